package zoho

const (
	DefaultAccountsURL = "https://accounts.zoho.com"
	DefaultAPIURL      = "https://projectsapi.zoho.com/restapi"

	// DefaultPageSize is the largest range the projects API accepts.
	DefaultPageSize = 100

	tokenPath = "/oauth/v2/token"
)
