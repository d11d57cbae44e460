package db_models

import "github.com/google/uuid"

// Devotee is a managed member profile. It is loosely paired with an Account
// through the email column; FacilitatorID links a devotee to the devotee
// record of their counsellor (one level, not an arbitrary tree).
type Devotee struct {
	BaseModel
	FirstName                  string     `json:"first_name" gorm:"index"`
	MiddleName                 string     `json:"middle_name"`
	LastName                   string     `json:"last_name"`
	Gender                     string     `json:"gender"`
	DOB                        string     `json:"dob"`
	Ethnicity                  string     `json:"ethnicity"`
	Citizenship                string     `json:"citizenship"`
	MaritalStatus              string     `json:"marital_status"`
	EducationQualificationCode string     `json:"education_qualification_code"`
	Address1                   string     `json:"address1"`
	Address2                   string     `json:"address2"`
	PinCode                    string     `json:"pin_code"`
	Email                      string     `json:"email" gorm:"index"`
	MobileNo                   string     `json:"mobile_no"`
	WhatsappNo                 string     `json:"whatsapp_no"`
	InitiatedName              string     `json:"initiated_name"`
	Photo                      string     `json:"photo"`
	SpiritualMasterID          string     `json:"spiritual_master_id"`
	FirstInitiationDate        string     `json:"first_initiation_date"`
	IskconFirstContactDate     string     `json:"iskcon_first_contact_date"`
	SecondInitiated            bool       `json:"second_initiated"`
	SecondInitiationDate       string     `json:"second_initiation_date"`
	FullTimeDevotee            bool       `json:"full_time_devotee"`
	TempleName                 string     `json:"temple_name"`
	Status                     string     `json:"status"`
	FacilitatorID              *uuid.UUID `json:"facilitator_id" gorm:"type:uuid;index"`
}
