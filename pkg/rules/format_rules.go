package rules

import (
	"context"
	"mime"
	"net/mail"
	"net/url"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

var (
	slugRegex     = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	mimeTypeRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9!#$&^_.+-]{0,126}/[a-z0-9][a-z0-9!#$&^_.+-]{0,126}$`)

	dateTokens = strings.NewReplacer("YYYY", "2006", "MM", "01", "DD", "02", "HH", "15", "mm", "04", "ss", "05")

	iso8601Layouts = []string{
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02",
		"2006-01",
	}

	looseBooleans = []string{"true", "false", "1", "0", "yes", "no", "on", "off"}
)

// isEmail follows RFC 5322 parsing plus the checks web forms expect:
// a non-empty local part and a dotted domain without empty labels.
func isEmail(s string, opts Options) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}

	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	if addr.Address != s && !opts.Bool("allowDisplayName") {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

// validateURL accepts absolute URLs; the protocols option restricts schemes.
func validateURL(ctx context.Context, e *Engine, value any, opts Options) (Verdict, error) {
	s, ok := value.(string)
	if !ok {
		return Fail("validateURL", nil), nil
	}
	valid, err := e.check(ctx, s, "url")
	if err != nil || !valid {
		return Fail("validateURL", nil), err
	}

	if protocols := opts.Strings("protocols"); len(protocols) > 0 {
		u, err := url.Parse(s)
		if err != nil || !slices.Contains(protocols, strings.ToLower(u.Scheme)) {
			return Fail("validateURL", map[string]any{"protocols": protocols}), nil
		}
	}
	return Pass("validateURL"), nil
}

// validateIP accepts any address, or only one family with version 4 or 6.
func validateIP(ctx context.Context, e *Engine, value any, opts Options) (Verdict, error) {
	return versionedTagRule(ctx, e, value, opts, "validateIP", map[int]string{0: "ip", 4: "ipv4", 6: "ipv6"})
}

func validateIPRange(ctx context.Context, e *Engine, value any, opts Options) (Verdict, error) {
	return versionedTagRule(ctx, e, value, opts, "validateIPRange", map[int]string{0: "cidr", 4: "cidrv4", 6: "cidrv6"})
}

func validateISBN(ctx context.Context, e *Engine, value any, opts Options) (Verdict, error) {
	return versionedTagRule(ctx, e, value, opts, "validateISBN", map[int]string{0: "isbn", 10: "isbn10", 13: "isbn13"})
}

func versionedTagRule(ctx context.Context, e *Engine, value any, opts Options, rule string, tags map[int]string) (Verdict, error) {
	version := opts.IntOr("version", 0)
	tag, ok := tags[version]
	if !ok {
		return Verdict{}, invalidOptionf("version %d is not supported", version)
	}

	var params map[string]any
	if version != 0 {
		params = map[string]any{"version": version}
	}

	s, ok := value.(string)
	if !ok {
		return Fail(rule, params), nil
	}
	valid, err := e.check(ctx, s, tag)
	if err != nil {
		return Verdict{}, err
	}
	return Check(valid, rule, params), nil
}

// validateUUID parses with google/uuid; the version option pins the version.
func validateUUID(_ context.Context, _ *Engine, value any, opts Options) (Verdict, error) {
	var params map[string]any
	version, hasVersion := opts.Int("version")
	if hasVersion {
		params = map[string]any{"version": version}
	}

	s, ok := value.(string)
	// Fast rejection: canonical form only, before parsing.
	if !ok || len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return Fail("validateUUID", params), nil
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return Fail("validateUUID", params), nil
	}
	if hasVersion && int(u.Version()) != version {
		return Fail("validateUUID", params), nil
	}
	return Pass("validateUUID"), nil
}

// validateDate parses with the format option, either a Go layout or
// YYYY/MM/DD/HH/mm/ss tokens. Defaults to YYYY-MM-DD.
func validateDate(_ context.Context, _ *Engine, value any, opts Options) (Verdict, error) {
	format := opts.StringOr("format", "YYYY-MM-DD")
	params := map[string]any{"format": format}
	s, ok := value.(string)
	if !ok {
		return Fail("validateDate", params), nil
	}
	_, err := time.Parse(dateTokens.Replace(format), s)
	return Check(err == nil, "validateDate", params), nil
}

func isISO8601(s string, _ Options) bool {
	for _, layout := range iso8601Layouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

// validateBoolean accepts strconv booleans; loose adds yes/no/on/off.
func validateBoolean(ctx context.Context, e *Engine, value any, opts Options) (Verdict, error) {
	s, ok := value.(string)
	if !ok {
		_, isBool := value.(bool)
		return Check(isBool, "validateBoolean", nil), nil
	}
	if opts.Bool("loose") {
		return Check(slices.Contains(looseBooleans, strings.ToLower(s)), "validateBoolean", nil), nil
	}
	valid, err := e.check(ctx, s, "boolean")
	if err != nil {
		return Verdict{}, err
	}
	return Check(valid, "validateBoolean", nil), nil
}

// isMimeType checks type/subtype syntax, parameters allowed. With known,
// the type must also be one gabriel-vasile/mimetype can detect.
func isMimeType(s string, opts Options) bool {
	base := s
	if i := strings.IndexByte(s, ';'); i >= 0 {
		mediaType, _, err := mime.ParseMediaType(s)
		if err != nil {
			return false
		}
		base = mediaType
	}
	base = strings.ToLower(strings.TrimSpace(base))
	if !mimeTypeRegex.MatchString(base) {
		return false
	}
	if opts.Bool("known") {
		return mimetype.Lookup(base) != nil
	}
	return true
}

func isSlug(s string, _ Options) bool {
	return slugRegex.MatchString(s)
}
