package model

// Payslip is one month's salary statement
type Payslip struct {
	EmployeeID  string             `json:"employeeId"`
	Month       string             `json:"month"`
	Year        string             `json:"year"`
	BasicSalary float64            `json:"basicSalary"`
	Allowances  map[string]float64 `json:"allowances"`
	Deductions  map[string]float64 `json:"deductions"`
	GrossSalary float64            `json:"grossSalary"`
	NetSalary   float64            `json:"netSalary"`
	PayPeriod   string             `json:"payPeriod"`
	PayDate     string             `json:"payDate"`
}

// PayslipSummary is one row of the payslip history list
type PayslipSummary struct {
	PayPeriod  string  `json:"payPeriod"`
	Basic      float64 `json:"basic"`
	HRA        float64 `json:"hra"`
	Conveyance float64 `json:"conveyance"`
	Medical    float64 `json:"medical"`
	Special    float64 `json:"special"`
	Gross      float64 `json:"gross"`
	PF         float64 `json:"pf"`
	ESI        float64 `json:"esi"`
	Tax        float64 `json:"tax"`
	Net        float64 `json:"net"`
	PayDate    string  `json:"payDate"`
}
