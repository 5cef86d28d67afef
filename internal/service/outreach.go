package service

import (
	"fmt"
	"strings"

	"motorlog/internal/engine"
)

// outreachMessage renders the text a workshop can forward to a client over
// WhatsApp or email. The engine only produces the data; sending is entirely
// up to the notification layer or a human.
func outreachMessage(opp engine.Opportunity) string {
	var b strings.Builder

	name := opp.Client.Vehicle.Plate
	if opp.Client.Name != nil {
		name = *opp.Client.Name
	}
	fmt.Fprintf(&b, "Hi %s! Your %s %s has pending maintenance:\n",
		name, opp.Client.Vehicle.Brand, opp.Client.Vehicle.Model)

	for _, alert := range opp.Alerts {
		fmt.Fprintf(&b, "- %s\n", alert.Message)
	}

	fmt.Fprintf(&b, "Estimated total: %.0f-%.0f. Reply to book a visit.", opp.MinTotal, opp.MaxTotal)
	return b.String()
}
