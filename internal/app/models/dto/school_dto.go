package dto

// CreateSchoolRequest represents a school creation request
type CreateSchoolRequest struct {
	Name    string `json:"name" binding:"required,min=2"`
	Motto   string `json:"motto,omitempty"`
	Address string `json:"address,omitempty"`
}

// SchoolResponse represents school information including its derived code
type SchoolResponse struct {
	ID           int64  `json:"id" example:"1"`
	Name         string `json:"name" example:"Great Pearl Academy"`
	Abbreviation string `json:"abbreviation" example:"GPA"`
	Motto        string `json:"motto,omitempty"`
	Address      string `json:"address,omitempty"`
}
