package telegram

import (
	"strings"

	"patient-intake-router/internal/router"
)

// formatReply turns a routing decision into the message sent back to the patient.
func (h *handler) formatReply(d router.Decision) string {
	switch d.Status {
	case router.StatusEmergency:
		return msgEmergency

	case router.StatusNeedsClarification:
		if len(d.Questions) == 0 {
			return msgClarifyFallback
		}
		var b strings.Builder
		b.WriteString("To route you correctly, could you help me with:\n")
		for _, q := range d.Questions {
			b.WriteString("- " + q + "\n")
		}
		return strings.TrimRight(b.String(), "\n")

	case router.StatusClassified:
		var b strings.Builder
		b.WriteString("We will route you to " + h.departmentName(d.RouteTo) + ".")
		if len(d.RequiredPrerequisites) > 0 {
			b.WriteString("\n\nPlease have ready:\n")
			b.WriteString(h.listPrerequisites(d.RequiredPrerequisites))
		}
		if len(d.OptionalPrerequisites) > 0 {
			b.WriteString("\n\nIf you have them, also bring:\n")
			b.WriteString(h.listPrerequisites(d.OptionalPrerequisites))
		}
		return b.String()

	default:
		return msgProcessingFailed
	}
}

func (h *handler) departmentName(id string) string {
	if d, ok := h.cfg.Department(id); ok && d.Name != "" {
		return d.Name
	}
	return id
}

func (h *handler) listPrerequisites(ids []string) string {
	lines := make([]string, 0, len(ids))
	for _, id := range ids {
		name := id
		if p, ok := h.cfg.Prerequisite(id); ok && p.Name != "" {
			name = p.Name
		}
		lines = append(lines, "- "+name)
	}
	return strings.Join(lines, "\n")
}
