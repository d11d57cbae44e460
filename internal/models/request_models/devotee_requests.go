package request_models

// DevoteeRequest carries the full profile field set. Create and update arrive
// as multipart forms (the photo travels as a file part), bulk import as JSON.
type DevoteeRequest struct {
	FirstName                  string `form:"first_name" json:"first_name"`
	MiddleName                 string `form:"middle_name" json:"middle_name"`
	LastName                   string `form:"last_name" json:"last_name"`
	Gender                     string `form:"gender" json:"gender"`
	DOB                        string `form:"dob" json:"dob"`
	Ethnicity                  string `form:"ethnicity" json:"ethnicity"`
	Citizenship                string `form:"citizenship" json:"citizenship"`
	MaritalStatus              string `form:"marital_status" json:"marital_status"`
	EducationQualificationCode string `form:"education_qualification_code" json:"education_qualification_code"`
	Address1                   string `form:"address1" json:"address1"`
	Address2                   string `form:"address2" json:"address2"`
	PinCode                    string `form:"pin_code" json:"pin_code"`
	Email                      string `form:"email" json:"email"`
	MobileNo                   string `form:"mobile_no" json:"mobile_no"`
	WhatsappNo                 string `form:"whatsapp_no" json:"whatsapp_no"`
	InitiatedName              string `form:"initiated_name" json:"initiated_name"`
	Photo                      string `form:"photo" json:"photo"`
	SpiritualMasterID          string `form:"spiritual_master_id" json:"spiritual_master_id"`
	FirstInitiationDate        string `form:"first_initiation_date" json:"first_initiation_date"`
	IskconFirstContactDate     string `form:"iskcon_first_contact_date" json:"iskcon_first_contact_date"`
	SecondInitiated            bool   `form:"second_initiated" json:"second_initiated"`
	SecondInitiationDate       string `form:"second_initiation_date" json:"second_initiation_date"`
	FullTimeDevotee            bool   `form:"full_time_devotee" json:"full_time_devotee"`
	TempleName                 string `form:"temple_name" json:"temple_name"`
	Status                     string `form:"status" json:"status"`
	FacilitatorID              string `form:"facilitator_id" json:"facilitator_id"`
}

type BulkDevoteesRequest struct {
	Devotees []DevoteeRequest `json:"devotees" binding:"required,min=1"`
}
