package config

// Overrides carries one optional value per SSHConfig field. A nil pointer
// means the source did not supply the field.
type Overrides struct {
	ClusterID         *string
	Username          *string
	JobUIPort         *int
	JobHistoryUIPort  *int
	WebUIPort         *int
	JupyterPort       *int
	NameNodeUIPort    *int
	RStudioServerPort *int
	Host              *bool
	Connect           *bool
}

// String returns a pointer to s, for building Overrides literals.
func String(s string) *string { return &s }

// Int returns a pointer to i.
func Int(i int) *int { return &i }

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }
