package domain

// User discriminator
const (
	UserTypeApplicant = "applicant"
	UserTypeCompany   = "company"
)

// Gender values
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// Education levels
const (
	EducationNone             = "without_education"
	EducationSecondarySpecial = "secondary_special"
	EducationIncompleteHigher = "incomplete_higher"
	EducationHigher           = "higher"
	EducationBachelor         = "bachelor"
	EducationMaster           = "master"
	EducationPhD              = "phd"
	EducationDoctorOfScience  = "doctor_science"
)

// Employment types (multi-valued tags on resumes and vacancies)
const (
	EmploymentFullTime  = "full time"
	EmploymentPartTime  = "part time"
	EmploymentRemote    = "remote work"
	EmploymentFlex      = "flex work"
	EmploymentShiftWork = "shift work"
	EmploymentFreelance = "freelance"
)

// Work schedules
const (
	ScheduleFiveByTwo  = "5/2"
	ScheduleTwoByTwo   = "2/2"
	ScheduleThreeByTwo = "3/2"
	ScheduleSixByOne   = "6/1"
	ScheduleWeekends   = "on weekends"
	ScheduleFlexible   = "flexible schedule"
	ScheduleOther      = "other schedule"
)

// Salary currencies
const (
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
	CurrencyRUB = "RUB"
	CurrencyBYN = "BYN"
)

// Actor types: which side of a response thread a participant is on
const (
	ActorApplicant = "APPLICANT"
	ActorCompany   = "COMPANY"
)

// Response statuses. SENT is the only initial state; any of the others may
// follow - the counterparty rule, not a transition graph, guards changes.
const (
	StatusSent     = "SENT"
	StatusViewed   = "VIEWED"
	StatusAccepted = "ACCEPTED"
	StatusDeclined = "DECLINED"
	StatusPending  = "PENDING"
)

// Chat types
const (
	ChatTypeResponse = "RESPONSE"
)

// ValidStatuses lists every status a change-status request may set.
var ValidStatuses = map[string]bool{
	StatusViewed:   true,
	StatusAccepted: true,
	StatusDeclined: true,
	StatusPending:  true,
}

// VacancyDurationDays maps a duration option to its day count.
var VacancyDurationDays = map[string]int{
	"7":   7,
	"14":  14,
	"30":  30,
	"90":  90,
	"180": 180,
}
