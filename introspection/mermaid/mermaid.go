// Package mermaid renders an introspection report as a Mermaid
// flowchart, suitable for embedding in documentation or serving from
// a debug endpoint.
package mermaid

import (
	"fmt"
	"strings"

	"github.com/strataframe/strata/introspection"
)

// GenerateIntrospectionGraph renders the report as a Mermaid flowchart.
// Components point at the contracts they resolved and the config keys
// they read; hosts are drawn with double borders.
func GenerateIntrospectionGraph(report introspection.Report) string {
	var b strings.Builder
	b.WriteString("flowchart TD\n")
	if report.AppName != "" {
		fmt.Fprintf(&b, "    %%%% %s\n", report.AppName)
	}

	for i, component := range report.Components {
		node := fmt.Sprintf("c%d", i)
		switch component.Kind {
		case introspection.ComponentKind_HOST:
			fmt.Fprintf(&b, "    %s[[\"%s\"]]\n", node, component.Name)
		default:
			fmt.Fprintf(&b, "    %s[\"%s\"]\n", node, component.Name)
		}

		for _, contract := range component.Resolved {
			fmt.Fprintf(&b, "    %s --> %s([\"%s\"])\n", node, contractNode(contract), contract)
		}
		for _, key := range component.ConfigKeys {
			fmt.Fprintf(&b, "    %s -.-> cfg_%s{{\"%s\"}}\n", node, sanitize(key), key)
		}
	}

	return b.String()
}

func contractNode(contract string) string {
	return "t_" + sanitize(contract)
}

func sanitize(s string) string {
	replacer := strings.NewReplacer(
		".", "_",
		"/", "_",
		"*", "",
		"[", "_",
		"]", "_",
		"-", "_",
		" ", "_",
	)
	return replacer.Replace(s)
}
