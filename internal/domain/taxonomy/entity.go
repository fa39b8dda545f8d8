package taxonomy

// The skill taxonomy is a three-level hierarchy: technologies hold
// domains, domains hold skills.

type Technology struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Domain struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	TechnologyID string `json:"technology_id"`
}

type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	DomainID string `json:"domain_id"`
}
