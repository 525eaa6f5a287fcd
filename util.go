package getbd

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sort"
	"strings"
)

func trimDotLower(s string) string { return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) }

func copyHeaders(dst, src http.Header) {
	for k, vs := range src {
		for _, v := range vs {
			dst.Add(k, v)
		}
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// digitsOnly drops every non-ASCII-digit rune.
func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// firstN returns at most n leading bytes of s.
func firstN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// limitNameservers keeps at most three non-empty entries, in order.
func limitNameservers(ns []string) []string {
	out := make([]string, 0, 3)
	for _, n := range ns {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		out = append(out, n)
		if len(out) == 3 {
			break
		}
	}
	return out
}
