package model

// EmployeeDetails is the identity block returned on login and verify
type EmployeeDetails struct {
	EmployeeID  string `json:"employeeId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Department  string `json:"department"`
	Designation string `json:"designation"`
	Role        string `json:"role"`
	JoiningDate string `json:"joiningDate"`
	Manager     string `json:"manager"`
}

// EmployeeProfile is the comprehensive HR master record
type EmployeeProfile struct {
	EmployeeID      string `json:"employeeId"`
	PersonnelNumber string `json:"personnelNumber"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	MiddleName      string `json:"middleName,omitempty"`
	FullName        string `json:"fullName"`
	Gender          string `json:"gender"`
	DateOfBirth     string `json:"dateOfBirth"`
	Nationality     string `json:"nationality"`
	MaritalStatus   string `json:"maritalStatus"`
	BloodGroup      string `json:"bloodGroup,omitempty"`
	PhotoURL        string `json:"photoUrl,omitempty"`

	PersonalEmail    string           `json:"personalEmail"`
	WorkEmail        string           `json:"workEmail"`
	PersonalMobile   string           `json:"personalMobile"`
	WorkMobile       string           `json:"workMobile"`
	EmergencyContact EmergencyContact `json:"emergencyContact"`

	Designation      string           `json:"designation"`
	Department       string           `json:"department"`
	Division         string           `json:"division"`
	Location         string           `json:"location"`
	ReportingManager ReportingManager `json:"reportingManager"`
	JoiningDate      string           `json:"joiningDate"`
	ConfirmationDate string           `json:"confirmationDate"`
	EmploymentType   string           `json:"employmentType"`
	Status           string           `json:"status"`
	CostCenter       string           `json:"costCenter"`
	Grade            string           `json:"grade"`
	Level            string           `json:"level"`

	Salary      SalaryBreakdown `json:"salary"`
	BankDetails EmployeeBank    `json:"bankDetails"`
	Addresses   struct {
		Permanent EmployeeAddress `json:"permanent"`
		Current   EmployeeAddress `json:"current"`
	} `json:"addresses"`
	Education      []Education     `json:"education"`
	Skills         []string        `json:"skills"`
	Certifications []Certification `json:"certifications"`

	WorkSchedule      WorkSchedule      `json:"workSchedule"`
	AttendanceSummary AttendanceSummary `json:"attendanceSummary"`
	LeaveBalance      LeaveBalance      `json:"leaveBalance"`
}

// EmergencyContact is the designated emergency contact of an employee
type EmergencyContact struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
}

// ReportingManager identifies the employee's manager
type ReportingManager struct {
	EmployeeID  string `json:"employeeId"`
	Name        string `json:"name"`
	Designation string `json:"designation"`
}

// SalaryBreakdown is the monthly salary component view
type SalaryBreakdown struct {
	Basic         float64 `json:"basic"`
	HRA           float64 `json:"hra"`
	Conveyance    float64 `json:"conveyance"`
	Medical       float64 `json:"medical"`
	Special       float64 `json:"special"`
	Gross         float64 `json:"gross"`
	PF            float64 `json:"pf"`
	ESI           float64 `json:"esi"`
	Tax           float64 `json:"tax"`
	Net           float64 `json:"net"`
	Currency      string  `json:"currency"`
	EffectiveDate string  `json:"effectiveDate"`
}

// EmployeeBank is the salary account record
type EmployeeBank struct {
	AccountNumber string `json:"accountNumber"`
	IFSCCode      string `json:"ifscCode"`
	BankName      string `json:"bankName"`
	BranchName    string `json:"branchName"`
	AccountType   string `json:"accountType"`
}

// EmployeeAddress is one employee address record
type EmployeeAddress struct {
	Type    string `json:"type"`
	Street  string `json:"street"`
	Area    string `json:"area"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	Pincode string `json:"pincode"`
}

// Education is one education history record
type Education struct {
	Degree      string  `json:"degree"`
	Major       string  `json:"major"`
	Institution string  `json:"institution"`
	University  string  `json:"university"`
	Year        int     `json:"year"`
	Percentage  float64 `json:"percentage"`
	Location    string  `json:"location"`
}

// WorkSchedule is the assigned working pattern
type WorkSchedule struct {
	WorkingHours string `json:"workingHours"`
	WorkingDays  string `json:"workingDays"`
	ShiftType    string `json:"shiftType"`
	TimeZone     string `json:"timeZone"`
}

// AttendanceSummary is the per-month attendance roll-up
type AttendanceSummary struct {
	Month                int             `json:"month"`
	Year                 int             `json:"year"`
	WorkingDays          int             `json:"workingDays"`
	PresentDays          int             `json:"presentDays"`
	AbsentDays           int             `json:"absentDays"`
	LeaveDays            int             `json:"leaveDays"`
	OvertimeHours        float64         `json:"overtimeHours,omitempty"`
	AttendancePercentage float64         `json:"attendancePercentage"`
	DailyAttendance      []DailyAttendance `json:"dailyAttendance,omitempty"`
}

// DailyAttendance is one day of the attendance calendar
type DailyAttendance struct {
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	InTime       string  `json:"inTime,omitempty"`
	OutTime      string  `json:"outTime,omitempty"`
	WorkingHours float64 `json:"workingHours,omitempty"`
}

// ProfileUpdate carries the editable fields of a profile update request
type ProfileUpdate struct {
	PersonalEmail    string            `json:"personalEmail,omitempty"`
	PersonalMobile   string            `json:"personalMobile,omitempty"`
	EmergencyContact *EmergencyContact `json:"emergencyContact,omitempty"`
	CurrentAddress   *EmployeeAddress  `json:"currentAddress,omitempty"`
	BankDetails      *EmployeeBank     `json:"bankDetails,omitempty"`
}
