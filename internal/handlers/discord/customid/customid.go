package customid

import (
	"strconv"
	"strings"

	apperrors "github.com/KirkDiggler/creature-battle/internal/errors"
)

const (
	// Separator is the character used to separate parts
	Separator = ":"

	// MaxLength is Discord's limit for custom IDs
	MaxLength = 100
)

// CustomID is a component id of the form domain:action[:target[:args...]],
// e.g. battle:move:battle-42:3
type CustomID struct {
	Domain string
	Action string
	Target string // battle id
	Args   []string
}

// New creates a new CustomID
func New(domain, action string) *CustomID {
	return &CustomID{
		Domain: domain,
		Action: action,
	}
}

// WithTarget sets the target
func (c *CustomID) WithTarget(target string) *CustomID {
	c.Target = target
	return c
}

// WithArgs adds arguments
func (c *CustomID) WithArgs(args ...string) *CustomID {
	c.Args = append(c.Args, args...)
	return c
}

// Arg returns the nth argument or an empty string
func (c *CustomID) Arg(n int) string {
	if n < 0 || n >= len(c.Args) {
		return ""
	}
	return c.Args[n]
}

// IntArg parses the nth argument as an integer
func (c *CustomID) IntArg(n int) (int, error) {
	v, err := strconv.Atoi(c.Arg(n))
	if err != nil {
		return 0, apperrors.InvalidArgumentf("custom ID argument %d of %s:%s is not a number: %q", n, c.Domain, c.Action, c.Arg(n))
	}
	return v, nil
}

// Encode joins the parts with Separator. Parts may not contain the separator
// and the result must fit Discord's limit.
func (c *CustomID) Encode() (string, error) {
	if c.Domain == "" || c.Action == "" {
		return "", apperrors.InvalidArgument("custom ID requires domain and action")
	}

	parts := []string{c.Domain, c.Action}
	if c.Target != "" {
		parts = append(parts, c.Target)
	}
	parts = append(parts, c.Args...)

	for _, p := range parts {
		if strings.Contains(p, Separator) {
			return "", apperrors.InvalidArgumentf("custom ID part %q contains separator", p)
		}
	}

	result := strings.Join(parts, Separator)
	if len(result) > MaxLength {
		return "", apperrors.InvalidArgumentf("custom ID %q exceeds %d characters", result, MaxLength)
	}

	return result, nil
}

// MustEncode is Encode for ids built from trusted parts
func (c *CustomID) MustEncode() string {
	result, err := c.Encode()
	if err != nil {
		panic(err)
	}
	return result
}

// Parse splits a custom ID into its parts
func Parse(customID string) (*CustomID, error) {
	parts := strings.Split(customID, Separator)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return nil, apperrors.InvalidArgumentf("invalid custom ID %q: expected at least domain:action", customID)
	}

	result := New(parts[0], parts[1])
	if len(parts) > 2 {
		result.Target = parts[2]
		result.Args = append(result.Args, parts[3:]...)
	}

	return result, nil
}

// Builder builds custom IDs for one domain
type Builder struct {
	domain string
}

// NewBuilder creates a new builder for a domain
func NewBuilder(domain string) *Builder {
	return &Builder{domain: domain}
}

// Domain returns the builder's domain
func (b *Builder) Domain() string {
	return b.domain
}

// Button encodes a button id in the builder's domain
func (b *Builder) Button(action, target string, args ...string) string {
	return New(b.domain, action).
		WithTarget(target).
		WithArgs(args...).
		MustEncode()
}

// Matches checks whether a custom ID belongs to the builder's domain
func (b *Builder) Matches(customID string) bool {
	parsed, err := Parse(customID)
	if err != nil {
		return false
	}
	return parsed.Domain == b.domain
}
