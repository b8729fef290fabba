package render

import (
	"fmt"
	"strings"
)

// renderKubernetes emits three documents: a ConfigMap holding every entry, a
// Deployment wiring each key in via configMapKeyRef, and a Service. Values
// never appear inline in the Deployment, masked or not; persistent storage
// is referenced by claim name only.
func renderKubernetes(entries []entry, opts Options) string {
	var b strings.Builder

	if opts.includeComments() {
		fmt.Fprintf(&b, "# Generated by %s v%s\n", toolName, opts.version())
		fmt.Fprintf(&b, "# Created: %s\n", opts.timestamp())
	}

	// ConfigMap
	b.WriteString("apiVersion: v1\n")
	b.WriteString("kind: ConfigMap\n")
	b.WriteString("metadata:\n")
	b.WriteString("  name: n8n-config\n")
	b.WriteString("  namespace: n8n\n")
	b.WriteString("data:\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "  %s: \"%s\"\n", e.key, escapeQuotes(e.value))
	}
	b.WriteString("---\n")

	// Deployment
	b.WriteString("apiVersion: apps/v1\n")
	b.WriteString("kind: Deployment\n")
	b.WriteString("metadata:\n")
	b.WriteString("  name: n8n\n")
	b.WriteString("  namespace: n8n\n")
	b.WriteString("spec:\n")
	b.WriteString("  replicas: 1\n")
	b.WriteString("  selector:\n")
	b.WriteString("    matchLabels:\n")
	b.WriteString("      app: n8n\n")
	b.WriteString("  template:\n")
	b.WriteString("    metadata:\n")
	b.WriteString("      labels:\n")
	b.WriteString("        app: n8n\n")
	b.WriteString("    spec:\n")
	b.WriteString("      containers:\n")
	b.WriteString("        - name: n8n\n")
	fmt.Fprintf(&b, "          image: %s\n", n8nImage)
	b.WriteString("          ports:\n")
	fmt.Fprintf(&b, "            - containerPort: %s\n", containerPort)
	if len(entries) > 0 {
		b.WriteString("          env:\n")
		for _, e := range entries {
			fmt.Fprintf(&b, "            - name: %s\n", e.key)
			b.WriteString("              valueFrom:\n")
			b.WriteString("                configMapKeyRef:\n")
			b.WriteString("                  name: n8n-config\n")
			fmt.Fprintf(&b, "                  key: %s\n", e.key)
		}
	}
	b.WriteString("          volumeMounts:\n")
	b.WriteString("            - name: n8n-data\n")
	b.WriteString("              mountPath: /home/node/.n8n\n")
	b.WriteString("      volumes:\n")
	b.WriteString("        - name: n8n-data\n")
	b.WriteString("          persistentVolumeClaim:\n")
	b.WriteString("            claimName: n8n-data\n")
	b.WriteString("---\n")

	// Service
	b.WriteString("apiVersion: v1\n")
	b.WriteString("kind: Service\n")
	b.WriteString("metadata:\n")
	b.WriteString("  name: n8n\n")
	b.WriteString("  namespace: n8n\n")
	b.WriteString("spec:\n")
	b.WriteString("  type: ClusterIP\n")
	b.WriteString("  selector:\n")
	b.WriteString("    app: n8n\n")
	b.WriteString("  ports:\n")
	fmt.Fprintf(&b, "    - port: %s\n", containerPort)
	fmt.Fprintf(&b, "      targetPort: %s\n", containerPort)

	return b.String()
}

// escapeQuotes escapes embedded double quotes only; everything else is
// emitted verbatim.
func escapeQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
