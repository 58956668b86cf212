package entities

// RequestContext is the caller identity attached to every repository call:
// bearer token, tenant (company) and user.
type RequestContext struct {
	Token     string
	CompanyID string
	UserID    string
}
