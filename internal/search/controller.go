// Package search implements the storefront's header search mode.
//
// The controller does not own timers. Each keystroke returns a token; the UI
// schedules a tick for the debounce interval and hands the token back through
// DebounceFired. Only the newest token triggers a re-render.
package search

import (
	"strings"
	"time"
)

const DefaultDebounce = 180 * time.Millisecond

type Target int

const (
	TargetOther Target = iota
	TargetChrome
	TargetInput
	TargetToggle
)

type Effect struct {
	Render     bool
	FocusInput bool
}

type Controller struct {
	Debounce time.Duration

	open      bool
	keyword   string
	typing    bool
	seq       uint64
	listening bool
}

func New(debounce time.Duration) *Controller {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Controller{Debounce: debounce}
}

func (c *Controller) Open() bool { return c.open }

func (c *Controller) Keyword() string { return c.keyword }

func (c *Controller) Typing() bool { return c.typing }

func (c *Controller) Listening() bool { return c.listening }

// Toggle opens or closes search. Both directions re-render the list.
func (c *Controller) Toggle() Effect {
	if c.open {
		c.close()
		return Effect{Render: true}
	}
	c.open = true
	c.bindOutside()
	return Effect{Render: true, FocusInput: true}
}

func (c *Controller) Close() Effect {
	if !c.open {
		return Effect{}
	}
	c.close()
	return Effect{Render: true}
}

// Keystroke records the keyword right away and returns the debounce token.
func (c *Controller) Keystroke(value string) uint64 {
	c.keyword = value
	c.typing = true
	c.seq++
	return c.seq
}

// DebounceFired ends the typing burst when token is the latest one.
func (c *Controller) DebounceFired(token uint64) bool {
	if token != c.seq || !c.typing {
		return false
	}
	c.typing = false
	return c.open
}

// PointerDown handles a tap on the screen while search is open. Taps on the
// header chrome close search, unless the user is still typing.
func (c *Controller) PointerDown(t Target) Effect {
	if !c.open || !c.listening || c.typing {
		return Effect{}
	}
	if t != TargetChrome {
		return Effect{}
	}
	c.close()
	return Effect{Render: true}
}

// Match reports whether a product name or id contains the current keyword.
func (c *Controller) Match(name, id string) bool { return Matches(c.keyword, name, id) }

// Matches is the case-insensitive substring test behind Match. An empty
// keyword matches everything.
func Matches(keyword, name, id string) bool {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	if kw == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), kw) || strings.Contains(strings.ToLower(id), kw)
}

func (c *Controller) close() {
	c.open = false
	c.keyword = ""
	c.typing = false
	// pending tokens stop matching
	c.seq++
	c.unbindOutside()
}

func (c *Controller) bindOutside() {
	if c.listening {
		return
	}
	c.listening = true
}

func (c *Controller) unbindOutside() { c.listening = false }
