package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/datum-labs/getbd"
)

var stdout io.Writer = os.Stdout

// render prints v in the --output format.
func render(v any) error {
	switch strings.ToLower(flagOutput) {
	case "", "json":
		return printJSON(v)
	case "yaml", "yml":
		return printYAML(v)
	case "text":
		printText(v)
		return nil
	}
	return fmt.Errorf("unknown output format %q", flagOutput)
}

// renderRaw prints a provider data member without knowing its shape.
func renderRaw(raw json.RawMessage) error {
	var v any
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
	}
	return render(v)
}

func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, string(b))
	return nil
}

func printYAML(v any) error {
	// Round-trip through JSON so yaml keys follow the json tags.
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var generic any
	if err := json.Unmarshal(b, &generic); err != nil {
		return err
	}
	enc := yaml.NewEncoder(stdout)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(generic)
}

func printHeader(kind, handle string) {
	fmt.Fprintf(stdout, "\n=== %s: %s ===\n", strings.ToUpper(kind), handle)
}

func printText(v any) {
	switch x := v.(type) {
	case getbd.SearchResults:
		printHeader("search", fmt.Sprintf("%d tlds", len(x)))
		for _, a := range x {
			fmt.Fprintf(stdout, "%-12s %s\n", a.TLD, a.Status)
		}
	case *getbd.WhoisInfo:
		printWhois(x)
	case *getbd.SyncStatus:
		printHeader("sync", x.Status)
		fmt.Fprintf(stdout, "created: %s\nexpires: %s\n", x.CreationTime, x.EndTime)
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(stdout, "%s: %v\n", k, x[k])
		}
	case getbd.DomainRate:
		printText(map[string]any(x))
	default:
		fmt.Fprintf(stdout, "%v\n", x)
	}
}

func printWhois(w *getbd.WhoisInfo) {
	r := w.Whois.Registrant
	printHeader("domain", r.Name)
	fmt.Fprintf(stdout, "created: %s\nexpires: %s\ntransferlock: %v\n", w.CreationTime, w.EndTime, w.TransferLock)
	fmt.Fprintln(stdout, "nameservers:")
	for _, ns := range w.Nameservers {
		if ns != "" {
			fmt.Fprintf(stdout, "  - %s\n", ns)
		}
	}
	fmt.Fprintf(stdout, "registrant: %s %s <%s>\n", r.FirstName, r.LastName, r.EMail)
	fmt.Fprintf(stdout, "company: %s\nphone: +%s %s\n", r.Company, r.PhoneCountryCode, r.Phone)
}
