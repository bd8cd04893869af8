package govdata

import (
	"context"
	"strings"

	"github.com/jonathan/career-compass/internal/matching"
	"github.com/jonathan/career-compass/internal/types"
)

// StaticProvider serves the enrichment tables from process memory. It is the
// default provider and the fallback when a remote source is unreachable.
type StaticProvider struct{}

// NewStaticProvider returns a provider backed by the built-in tables.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

// Schemes filters the scheme table against the profile. Scholarship schemes
// are always included; the rest gate on education, interests, or skills.
func (p *StaticProvider) Schemes(_ context.Context, profile *types.Profile) ([]types.Scheme, error) {
	if profile == nil {
		return allSchemes(), nil
	}

	var out []types.Scheme
	for _, scheme := range allSchemes() {
		if schemeMatches(&scheme, profile) {
			out = append(out, scheme)
		}
	}
	return out, nil
}

func schemeMatches(scheme *types.Scheme, profile *types.Profile) bool {
	switch scheme.ID {
	case "pmkvy":
		if strings.EqualFold(profile.Education, "High School") {
			return true
		}
	case "startup-india":
		if matching.LabelMatchesAny("entrepreneurship", profile.Interests) {
			return true
		}
	case "digital-india":
		if matching.LabelMatchesAny("technology", profile.Skills) {
			return true
		}
	}
	return scheme.Category == types.SchemeScholarship
}

// MarketData returns the skill-demand snapshot.
func (p *StaticProvider) MarketData(_ context.Context) ([]types.MarketData, error) {
	return []types.MarketData{
		{
			Skill:            "Artificial Intelligence",
			DemandTrend:      45.2,
			AverageSalary:    "₹15,00,000 - ₹30,00,000",
			JobOpenings:      12500,
			GrowthProjection: "35% by 2027",
			TopCompanies:     []string{"TCS", "Infosys", "Google", "Microsoft", "Flipkart"},
			Locations:        []string{"Bangalore", "Hyderabad", "Pune", "Chennai", "Mumbai"},
		},
		{
			Skill:            "Data Science",
			DemandTrend:      38.7,
			AverageSalary:    "₹12,00,000 - ₹25,00,000",
			JobOpenings:      8900,
			GrowthProjection: "28% by 2027",
			TopCompanies:     []string{"Amazon", "Flipkart", "Paytm", "Zomato", "Swiggy"},
			Locations:        []string{"Bangalore", "Delhi NCR", "Mumbai", "Hyderabad", "Pune"},
		},
		{
			Skill:            "Cloud Computing",
			DemandTrend:      42.1,
			AverageSalary:    "₹10,00,000 - ₹22,00,000",
			JobOpenings:      15600,
			GrowthProjection: "32% by 2027",
			TopCompanies:     []string{"AWS", "Microsoft", "Google Cloud", "IBM", "Accenture"},
			Locations:        []string{"Bangalore", "Hyderabad", "Chennai", "Pune", "Kolkata"},
		},
		{
			Skill:            "Cybersecurity",
			DemandTrend:      51.3,
			AverageSalary:    "₹8,00,000 - ₹20,00,000",
			JobOpenings:      6700,
			GrowthProjection: "40% by 2027",
			TopCompanies:     []string{"Wipro", "TCS", "HCL", "Tech Mahindra", "L&T"},
			Locations:        []string{"Delhi NCR", "Bangalore", "Mumbai", "Chennai", "Hyderabad"},
		},
	}, nil
}

// CareerDemand looks up the demand record by career title or id. Titles are
// normalized to the id form (lowercase, spaces to hyphens). Unknown careers
// return nil, nil.
func (p *StaticProvider) CareerDemand(_ context.Context, career string) (*types.DemandData, error) {
	key := strings.Join(strings.Fields(strings.ToLower(career)), "-")
	record, ok := demandTable[key]
	if !ok {
		return nil, nil
	}
	out := record
	return &out, nil
}

var demandTable = map[string]types.DemandData{
	"data-scientist": {
		Career:                "Data Scientist",
		DemandScore:           92,
		SalaryRange:           types.SalaryBounds{Min: 800_000, Max: 2_500_000},
		Currency:              "INR",
		JobGrowth:             28.5,
		SkillsInDemand:        []string{"Python", "Machine Learning", "SQL", "Statistics", "Deep Learning"},
		TopLocations:          []string{"Bangalore", "Hyderabad", "Pune", "Chennai", "Mumbai"},
		GovernmentInitiatives: []string{"Digital India", "AI for All", "National AI Strategy"},
	},
	"full-stack-developer": {
		Career:                "Full Stack Developer",
		DemandScore:           88,
		SalaryRange:           types.SalaryBounds{Min: 600_000, Max: 1_800_000},
		Currency:              "INR",
		JobGrowth:             22.3,
		SkillsInDemand:        []string{"JavaScript", "React", "Node.js", "Python", "Cloud Computing"},
		TopLocations:          []string{"Bangalore", "Pune", "Hyderabad", "Chennai", "Delhi NCR"},
		GovernmentInitiatives: []string{"Digital India", "Skill India", "Make in India"},
	},
	"ai-engineer": {
		Career:                "AI/ML Engineer",
		DemandScore:           95,
		SalaryRange:           types.SalaryBounds{Min: 1_200_000, Max: 3_000_000},
		Currency:              "INR",
		JobGrowth:             35.7,
		SkillsInDemand:        []string{"Python", "TensorFlow", "PyTorch", "Deep Learning", "NLP"},
		TopLocations:          []string{"Bangalore", "Hyderabad", "Pune", "Chennai", "Mumbai"},
		GovernmentInitiatives: []string{"National AI Mission", "AI for All", "Digital India"},
	},
}

func allSchemes() []types.Scheme {
	return []types.Scheme{
		{
			ID:             "pmkvy",
			Name:           "Pradhan Mantri Kaushal Vikas Yojana (PMKVY)",
			Description:    "Skill development program providing free training and certification",
			Eligibility:    []string{"Age 18-35", "Class 10th pass", "Indian citizen"},
			Amount:         "Free training + ₹8,000 incentive",
			Deadline:       "2026-12-31",
			ApplicationURL: "https://www.pmkvyofficial.org/",
			Category:       types.SchemeSkillDevelopment,
			TargetAudience: []string{"Students", "Job seekers", "School dropouts"},
		},
		{
			ID:             "nsp",
			Name:           "National Scholarship Portal",
			Description:    "Centralized platform for various government scholarships",
			Eligibility:    []string{"Merit-based", "Income criteria", "Category-specific"},
			Amount:         "₹10,000 - ₹2,00,000 per year",
			Deadline:       "2026-10-31",
			ApplicationURL: "https://scholarships.gov.in/",
			Category:       types.SchemeScholarship,
			TargetAudience: []string{"Students", "SC/ST/OBC", "Minorities"},
		},
		{
			ID:             "startup-india",
			Name:           "Startup India Initiative",
			Description:    "Support for entrepreneurs and startups",
			Eligibility:    []string{"Innovative business idea", "Age 18+", "Indian resident"},
			Amount:         "Up to ₹10 lakhs funding",
			Deadline:       "Rolling basis",
			ApplicationURL: "https://www.startupindia.gov.in/",
			Category:       types.SchemeEmployment,
			TargetAudience: []string{"Entrepreneurs", "Graduates", "Professionals"},
		},
		{
			ID:             "digital-india",
			Name:           "Digital India Skills Program",
			Description:    "Free digital literacy and skill development courses",
			Eligibility:    []string{"Basic computer knowledge", "Age 16+"},
			Amount:         "Free certification",
			Deadline:       "Ongoing",
			ApplicationURL: "https://digitalindia.gov.in/",
			Category:       types.SchemeSkillDevelopment,
			TargetAudience: []string{"Students", "Working professionals", "Rural population"},
		},
		{
			ID:             "mudra-yojana",
			Name:           "Pradhan Mantri MUDRA Yojana",
			Description:    "Micro-finance scheme for small businesses",
			Eligibility:    []string{"Business plan", "Age 18+", "Indian citizen"},
			Amount:         "₹50,000 - ₹10,00,000 loan",
			Deadline:       "Ongoing",
			ApplicationURL: "https://www.mudra.org.in/",
			Category:       types.SchemeEmployment,
			TargetAudience: []string{"Small business owners", "Entrepreneurs", "Self-employed"},
		},
	}
}
