package domain

// Owner is a Render workspace (user or team) that can own services.
type Owner struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Type  string `json:"type,omitempty"`
}

type EnvVar struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ServiceSpec is the creation payload for a Render web service.
type ServiceSpec struct {
	Type         string   `json:"type"`
	Name         string   `json:"name"`
	OwnerID      string   `json:"ownerId"`
	Repo         string   `json:"repo"`
	Branch       string   `json:"branch"`
	RootDir      string   `json:"rootDir"`
	Runtime      string   `json:"runtime"`
	BuildCommand string   `json:"buildCommand"`
	StartCommand string   `json:"startCommand"`
	PlanID       string   `json:"planId"`
	Region       string   `json:"region"`
	EnvVars      []EnvVar `json:"envVars"`
}

type ServiceDetails struct {
	URL    string `json:"url"`
	Region string `json:"region,omitempty"`
	Plan   string `json:"plan,omitempty"`
}

// Service is the subset of a Render service the helper reads.
type Service struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	OwnerID        string         `json:"ownerId"`
	Type           string         `json:"type"`
	Repo           string         `json:"repo"`
	Branch         string         `json:"branch"`
	DashboardURL   string         `json:"dashboardUrl"`
	ServiceDetails ServiceDetails `json:"serviceDetails"`
}

// DeployResult summarizes one run of the deployment helper.
type DeployResult struct {
	OwnerID      string
	ServiceID    string
	ServiceName  string
	URL          string
	DashboardURL string
	Existing     bool
}
