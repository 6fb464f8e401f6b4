package usecase

import (
	"fmt"
	"strings"
	"su_herramienta/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Outbound texts are Spanish: the shop's clients and staff are in Colombia.
const (
	signature = "— SU HERRAMIENTA CST"

	optionsFooter = "Responda con el número de su elección:\n" +
		"*1* Autorizar todas las herramientas\n" +
		"*2* No autorizar la reparación\n" +
		"*3* Autorizar solo algunas herramientas\n" +
		"*4* Hablar con un asesor"

	msgFullAuthorization = "✅ *¡Cotización autorizada!* Gracias, procederemos con la reparación de todas sus herramientas. Le avisaremos cuando estén listas. " + signature
	msgRejection         = "Entendido, hemos registrado que *no autoriza* la reparación en este momento. Si cambia de opinión no dude en contactarnos. " + signature
	msgInvalidOption     = "Por favor responda con *1*, *2*, *3* o *4* según su elección."
	msgNoEquipmentToPick = "Esta orden no tiene herramientas para seleccionar. Por favor responda con *1*, *2* o *4*."
	msgAdvisorFallback   = "En breve uno de nuestros asesores se comunicará con usted. " + signature

	shopAddress = "📍 Calle 21 No 10 02, Pereira\n📞 3104650437"
)

func buildAdvisorReply(number string) string {
	if number == "" {
		return msgAdvisorFallback
	}
	return fmt.Sprintf("Le comunicamos con nuestro asesor: *%s* %s", number, signature)
}

func buildQuoteMessage(quote string) string {
	return strings.TrimRight(quote, "\n ") + "\n\n" + optionsFooter
}

func buildSelectionList(equipment []entities.EquipmentEntry) string {
	var b strings.Builder
	b.WriteString("Seleccione las máquinas a *autorizar* enviando sus números separados por coma (ej: 1,3):\n\n")
	for i, e := range equipment {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d. %s", i+1, e.DisplayName())
		if e.Serial != "" {
			fmt.Fprintf(&b, " (S/N: %s)", e.Serial)
		}
		if e.Subtotal.Valid {
			fmt.Fprintf(&b, " — %s", formatCOP(e.Subtotal.Decimal))
		}
	}
	return b.String()
}

func buildInvalidSelection(count int) string {
	return fmt.Sprintf("No entendí su selección. Por favor envíe los números separados por coma (ej: 1,3). Los números deben estar entre 1 y %d.", count)
}

func buildPartialConfirmation(authorized, notAuthorized []string) string {
	var b strings.Builder
	b.WriteString("✅ *Autorización parcial registrada.*\n\n*Autorizadas:*\n")
	b.WriteString(bulletList(authorized))
	if len(notAuthorized) > 0 {
		b.WriteString("\n\n*No autorizadas:*\n")
		b.WriteString(bulletList(notAuthorized))
	}
	b.WriteString("\n\nProcederemos con las herramientas autorizadas. Le avisaremos cuando estén listas. ")
	b.WriteString(signature)
	return b.String()
}

// buildPartsNotice renders the consolidated parts list for the parts department.
func buildPartsNotice(order entities.Order, equipment []entities.EquipmentEntry, items map[string][]entities.QuoteItem) string {
	blocks := make([]string, 0, len(equipment))
	for _, e := range equipment {
		var b strings.Builder
		fmt.Fprintf(&b, "*%s*", e.DisplayName())
		if e.Serial != "" {
			fmt.Fprintf(&b, " / S/N: %s", e.Serial)
		}
		b.WriteString("\n")
		lines := items[e.ID]
		if len(lines) == 0 {
			b.WriteString("  (solo mano de obra)")
		}
		for i, it := range lines {
			if i > 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "  • %dx %s", it.Quantity, it.Name)
		}
		blocks = append(blocks, b.String())
	}
	return "🔧 *REPUESTOS AUTORIZADOS*\n" +
		"Orden #" + order.DisplayNumber() + "\n\n" +
		strings.Join(blocks, "\n\n") +
		"\n\n" + signature
}

func buildReadyNotice(clientName string, equipment []entities.EquipmentEntry) string {
	return fmt.Sprintf("Hola %s, le informamos que las siguientes herramientas están *reparadas y listas para recoger*:\n\n%s\n\n%s\n%s",
		clientNameOrDefault(clientName), bulletList(displayNames(equipment)), shopAddress, signature)
}

func buildDeliveredNotice(clientName string, equipment []entities.EquipmentEntry) string {
	return fmt.Sprintf("Hola %s, confirmamos la entrega de las siguientes herramientas:\n\n%s\n\n¡Gracias por confiar en nosotros!\n%s",
		clientNameOrDefault(clientName), bulletList(displayNames(equipment)), signature)
}

func clientNameOrDefault(name string) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	return "cliente"
}

func displayNames(equipment []entities.EquipmentEntry) []string {
	out := make([]string, 0, len(equipment))
	for _, e := range equipment {
		out = append(out, e.DisplayName())
	}
	return out
}

func bulletList(lines []string) string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, "  • "+l)
	}
	return strings.Join(out, "\n")
}

// formatCOP formats an amount the es-CO way: "$1.234.567" or "$1.234,5".
func formatCOP(amount decimal.Decimal) string {
	neg := amount.IsNegative()
	amount = amount.Abs()
	whole := amount.Truncate(0)
	frac := amount.Sub(whole)

	digits := whole.StringFixed(0)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	out := b.String()
	if !frac.IsZero() {
		// at most three fraction digits, trailing zeros dropped
		f := strings.TrimRight(frac.StringFixed(3)[2:], "0")
		if f != "" {
			out += "," + f
		}
	}
	if neg {
		return "-$" + out
	}
	return "$" + out
}
