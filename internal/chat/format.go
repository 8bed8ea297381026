package chat

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/theyellowexpress/expressbot/internal/catalog"
	"github.com/theyellowexpress/expressbot/internal/pricing"
)

func (e *Engine) priceOverview() string {
	r := e.rates
	return fmt.Sprintf("💰 **Nuestros precios:**\n\n• **$%.2f por libra**\n• Mínimo: $%.2f\n• Manejo: $%.2f\n\nEjemplos:\n• 3 lb → $%.2f\n• 5 lb → $%.2f\n• 10 lb → $%.2f\n\nDime el peso de tu paquete para cotizar.",
		r.PricePerPound, r.MinimumCharge, r.HandlingFee,
		r.ForWeight(3, 0, false).Total,
		r.ForWeight(5, 0, false).Total,
		r.ForWeight(10, 0, false).Total)
}

func quickQuoteReply(weight float64, q pricing.Quote) string {
	return fmt.Sprintf("📦 Para **%g libras** el costo es **$%.2f**\n\nDesglose:\n• Envío: $%.2f\n• Manejo: $%.2f\n\n⏱️ Tiempo de entrega: 7-12 días hábiles\n\n¿Te gustaría crear un pedido?",
		weight, q.Total, q.BaseCost, q.HandlingFee)
}

func productAcceptedReply(product string) string {
	return fmt.Sprintf("✅ Anotado: %q. ¿Cuánto pesa aproximadamente? Puedes decirme en libras o kilos.", product)
}

func restrictedNoticeReply(matches []catalog.Match) string {
	var b strings.Builder
	b.WriteString("⚠️ **Ese artículo tiene restricciones:**\n\n")
	for _, m := range matches {
		fmt.Fprintf(&b, "• %s: %s\n", m.Item, m.Detail)
	}
	b.WriteString("\nPodemos continuar si cumples con los requisitos. ¿Cuánto pesa aproximadamente?")
	return b.String()
}

func prohibitedRefusalReply(matches []catalog.Match) string {
	var b strings.Builder
	b.WriteString("🚫 **Lo siento, no podemos crear un pedido para eso.**\n\n")
	for _, m := range matches {
		fmt.Fprintf(&b, "• %s: %s\n", m.Item, m.Detail)
	}
	b.WriteString("\nNo podemos enviar armas, explosivos, drogas, materiales inflamables ni otros artículos peligrosos.\n\n¿Hay algo más que pueda ayudarte a enviar?")
	return b.String()
}

func weightAcceptedReply(weight float64, q pricing.Quote) string {
	return fmt.Sprintf("%g libras, el costo sería $%.2f. Ahora necesito tus datos de contacto. ¿Cuál es tu nombre completo?", weight, q.Total)
}

func nameAcceptedReply(name string) string {
	first := name
	if i := strings.IndexByte(name, ' '); i > 0 {
		first = name[:i]
	}
	return fmt.Sprintf("Gracias %s. ¿Cuál es tu número de teléfono o WhatsApp?", first)
}

func orderSummaryReply(d Draft, q pricing.Quote) string {
	return fmt.Sprintf("Perfecto, este es el resumen de tu pedido:\n\n📦 **Producto:** %s\n⚖️ **Peso:** %g lb\n💰 **Costo:** $%.2f\n\n👤 **Nombre:** %s\n📱 **Teléfono:** %s\n📍 **Entrega:** %s, %s\n\n¿Confirmas el pedido? (sí/no)",
		d.Product, d.Weight, q.Total, d.ContactName, d.ContactPhone, d.DeliveryAddress, d.DeliveryCity)
}

func orderCreatedReply(tracking string) string {
	return fmt.Sprintf("✅ ¡Pedido creado exitosamente!\n\n🔢 **Número de rastreo:** %s\n\nTe contactaremos pronto para coordinar la recepción del paquete. Puedes rastrear tu envío en cualquier momento con ese número.\n\n¿Necesitas algo más?", tracking)
}

func submissionFailedReply(err error) string {
	return fmt.Sprintf("Hubo un problema al guardar el pedido: %v. Por favor intenta de nuevo o contáctanos por WhatsApp.", err)
}

// answerWeightPattern picks up a weight the completion service quoted in
// its own reply, e.g. "para 5 libras el costo es...".
var answerWeightPattern = regexp.MustCompile(`(?i)([\d.]+)\s*libras?`)
