package model

// Identity is the canonical authenticated-user record exposed by GET /auth/me
// and carried by the client SDK. It is always sourced from the database at
// fetch time, never from a cached client copy, so role changes take effect on
// the next login or identity refresh.
type Identity struct {
	AssociateID string `json:"associate_id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	Role        Role   `json:"role"`
	// OriginalRole tracks the true role while masquerading. It is set once
	// when the session authenticates and never overwritten by Role switches.
	OriginalRole Role   `json:"original_role,omitempty"`
	Designation  string `json:"designation,omitempty"`
	Picture      string `json:"picture,omitempty"`
}
