package certificate

import "time"

type Certificate struct {
	ID        string
	Name      string
	Provider  string
	CreatedAt time.Time
}

// CertificateHolder is a candidate listed through a certificate lookup.
type CertificateHolder struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
