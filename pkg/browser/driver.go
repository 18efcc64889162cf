package browser

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

var (
	ErrEmptyContact     = errors.New("browser: empty contact")
	ErrEmptyDescription = errors.New("browser: empty element description")
	ErrElementNotFound  = errors.New("browser: element not found")
)

// Driver automates a Chrome instance: WhatsApp Web messages plus clicks and
// typing on the active tab. The browser is connected lazily on first use.
type Driver struct {
	cfg Config

	mu      sync.Mutex
	browser *rod.Browser
}

// New creates a driver. Nothing is launched until the first call.
func New(cfg Config) *Driver {
	return &Driver{cfg: cfg.withDefaults()}
}

func (d *Driver) connect(ctx context.Context) (*rod.Browser, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.browser != nil {
		return d.browser, nil
	}

	controlURL := d.cfg.ControlURL
	if controlURL == "" {
		u, err := launcher.New().Headless(d.cfg.Headless).Leakless(false).Launch()
		if err != nil {
			return nil, fmt.Errorf("launch chrome: %w", err)
		}
		controlURL = u
	}

	b := rod.New().ControlURL(controlURL)
	if err := b.Connect(); err != nil {
		return nil, fmt.Errorf("connect to chrome: %w", err)
	}
	d.browser = b
	return b, nil
}

// activePage returns the first open tab, creating a blank one if needed.
func (d *Driver) activePage(ctx context.Context) (*rod.Page, error) {
	b, err := d.connect(ctx)
	if err != nil {
		return nil, err
	}
	pages, err := b.Pages()
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	if len(pages) > 0 {
		return pages.First().Context(ctx).Timeout(d.cfg.Timeout), nil
	}
	p, err := b.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}
	return p.Context(ctx).Timeout(d.cfg.Timeout), nil
}

// whatsAppPage reuses an open WhatsApp Web tab or opens one.
func (d *Driver) whatsAppPage(ctx context.Context) (*rod.Page, error) {
	b, err := d.connect(ctx)
	if err != nil {
		return nil, err
	}
	if pages, err := b.Pages(); err == nil {
		if p, err := pages.FindByURL(whatsAppPagePattern); err == nil {
			return p.Context(ctx).Timeout(d.cfg.Timeout), nil
		}
	}

	p, err := b.Page(proto.TargetCreateTarget{URL: d.cfg.WhatsAppURL})
	if err != nil {
		return nil, fmt.Errorf("open whatsapp: %w", err)
	}
	p = p.Context(ctx).Timeout(d.cfg.Timeout)
	if err := p.WaitLoad(); err != nil {
		return nil, fmt.Errorf("load whatsapp: %w", err)
	}
	return p, nil
}

// SendChatMessage opens the chat with contact on WhatsApp Web and sends message.
func (d *Driver) SendChatMessage(ctx context.Context, contact, message string) error {
	contact = strings.TrimSpace(contact)
	if contact == "" {
		return ErrEmptyContact
	}

	p, err := d.whatsAppPage(ctx)
	if err != nil {
		return err
	}

	search, err := p.Element(searchBoxSelector)
	if err != nil {
		return fmt.Errorf("%w: search box: %v", ErrElementNotFound, err)
	}
	if err := search.SelectAllText(); err == nil {
		_ = p.Keyboard.Type(input.Backspace)
	}
	if err := search.Input(contact); err != nil {
		return fmt.Errorf("type contact: %w", err)
	}

	chat, err := p.ElementR(chatTitleSelector, ContactPattern(contact))
	if err != nil {
		return fmt.Errorf("%w: contact %q: %v", ErrElementNotFound, contact, err)
	}
	if err := chat.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("open chat: %w", err)
	}

	box, err := p.Element(messageBoxSelector)
	if err != nil {
		return fmt.Errorf("%w: message box: %v", ErrElementNotFound, err)
	}
	if err := box.Input(message); err != nil {
		return fmt.Errorf("type message: %w", err)
	}
	return p.Keyboard.Type(input.Enter)
}

// ClickElement clicks the first element of the active tab matching description.
func (d *Driver) ClickElement(ctx context.Context, description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return ErrEmptyDescription
	}

	p, err := d.activePage(ctx)
	if err != nil {
		return err
	}

	res, err := p.Search(description)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrElementNotFound, description, err)
	}
	defer res.Release()

	if err := res.First.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("click %q: %w", description, err)
	}
	return nil
}

// TypeText inserts text into the focused element of the active tab and
// presses Enter.
func (d *Driver) TypeText(ctx context.Context, text string) error {
	p, err := d.activePage(ctx)
	if err != nil {
		return err
	}
	if err := p.InsertText(text); err != nil {
		return fmt.Errorf("insert text: %w", err)
	}
	return p.Keyboard.Type(input.Enter)
}

// Close disconnects from the browser.
func (d *Driver) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.browser == nil {
		return nil
	}
	err := d.browser.Close()
	d.browser = nil
	return err
}

// ContactPattern builds the case-insensitive JS regex matching a chat title.
func ContactPattern(contact string) string {
	return "/" + regexp.QuoteMeta(strings.TrimSpace(contact)) + "/i"
}
