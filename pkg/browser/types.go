package browser

import "time"

// Config configures the browser driver.
type Config struct {
	// ControlURL attaches to a running Chrome (DevTools websocket). Empty
	// launches a local browser.
	ControlURL  string
	Headless    bool
	WhatsAppURL string
	Timeout     time.Duration
}

const (
	DefaultWhatsAppURL = "https://web.whatsapp.com/"
	DefaultTimeout     = 30 * time.Second

	whatsAppPagePattern = "web\\.whatsapp\\.com"
	searchBoxSelector   = `div[contenteditable="true"][data-tab="3"]`
	messageBoxSelector  = `footer div[contenteditable="true"]`
	chatTitleSelector   = `span[title]`
)

func (c Config) withDefaults() Config {
	if c.WhatsAppURL == "" {
		c.WhatsAppURL = DefaultWhatsAppURL
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}
