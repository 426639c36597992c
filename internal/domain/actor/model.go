package actor

import "time"

// Role classifies an actor on the marketplace. It is fixed at
// registration and never changes.
type Role string

const (
	RoleMainContractor Role = "MAIN_CONTRACTOR"
	RoleSubcontractor  Role = "SUBCONTRACTOR"
)

// TradeCategory is the closed set of construction specialties.
type TradeCategory string

const (
	TradeCivil      TradeCategory = "أعمال مدنية"
	TradeElectrical TradeCategory = "كهرباء"
	TradePlumbing   TradeCategory = "سباكة"
	TradeHVAC       TradeCategory = "تكييف"
	TradeFinishing  TradeCategory = "تشطيبات"
	TradeCarpentry  TradeCategory = "نجارة"
	TradeBlacksmith TradeCategory = "حدادة"
	TradeOther      TradeCategory = "أخرى"
)

// TradeCategories lists every valid trade category.
var TradeCategories = []TradeCategory{
	TradeCivil, TradeElectrical, TradePlumbing, TradeHVAC,
	TradeFinishing, TradeCarpentry, TradeBlacksmith, TradeOther,
}

// ValidTrade reports whether t is a member of the closed trade set.
func ValidTrade(t TradeCategory) bool {
	for _, c := range TradeCategories {
		if c == t {
			return true
		}
	}
	return false
}

// ExperienceLevel is the closed set of subcontractor experience tiers.
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "مبتديء"
	ExperienceIntermediate ExperienceLevel = "متوسط"
	ExperienceExpert       ExperienceLevel = "خبير"
)

// ValidExperience reports whether e is a member of the closed set.
func ValidExperience(e ExperienceLevel) bool {
	switch e {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceExpert:
		return true
	}
	return false
}

// Actor is a registered marketplace user of either role. Trade,
// experience level and certifications are only meaningful for
// subcontractors.
type Actor struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Role           Role            `json:"role"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone,omitempty"`
	Bio            string          `json:"bio,omitempty"`
	CompanyReg     string          `json:"companyReg,omitempty"`
	Trade          TradeCategory   `json:"trade,omitempty"`
	Experience     ExperienceLevel `json:"experienceLevel,omitempty"`
	Certifications []string        `json:"certifications,omitempty"`
	Rating         float64         `json:"rating,omitempty"`
	Location       string          `json:"location,omitempty"`
	Address        string          `json:"address,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// DirectoryFilter narrows a subcontractor directory search. An empty
// Query matches every actor; an empty Trade applies no trade
// constraint.
type DirectoryFilter struct {
	Query string
	Trade TradeCategory
}
