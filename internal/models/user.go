package models

type User struct {
	BaseModelWithDeleted
	Email        string        `gorm:"uniqueIndex" json:"email"`
	PasswordHash string        `json:"-"`
	Role         UserRole      `gorm:"index" json:"role"`
	Status       AccountStatus `json:"status"`
	FirstName    string        `json:"firstName"`
	LastName     string        `json:"lastName"`
	Phone        string        `json:"phone"`

	// Vendor-only fields.
	VendorStatus       VendorStatus `gorm:"index" json:"vendorStatus,omitempty"`
	VerificationStatus string       `json:"verificationStatus,omitempty"`
	Rating             float64      `json:"rating"`
	CompletedJobs      int          `json:"completedJobs"`

	// Customer-only field.
	CustomerStatus CustomerStatus `gorm:"index" json:"customerStatus,omitempty"`
}

func (u *User) IsVendor() bool {
	return u.Role == UserRoleVendor
}

func (u *User) IsCustomer() bool {
	return u.Role == UserRoleCustomer
}

func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}
