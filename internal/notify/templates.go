package notify

import (
	"fmt"
	"strings"

	"github.com/theyellowexpress/expressbot/internal/orders"
)

func statusWhatsAppBody(o *orders.Order, trackURL, notes string) string {
	var b strings.Builder
	b.WriteString("🚚 *The Yellow Express*\n\n")
	fmt.Fprintf(&b, "Hola %s,\n\n", o.CustomerName)
	fmt.Fprintf(&b, "Tu pedido *%s* ha sido actualizado.\n\n", o.TrackingNumber)
	fmt.Fprintf(&b, "📦 *Estado actual:* %s\n", o.Status.Label())
	fmt.Fprintf(&b, "📍 *Destino:* %s, %s\n", o.DestinationCity, o.DestinationCountry)
	if notes != "" {
		fmt.Fprintf(&b, "📝 %s\n", notes)
	}

	switch o.Status {
	case orders.StatusOutForDelivery:
		b.WriteString("\n🏍️ Tu paquete está en camino. ¡Prepárate para recibirlo!\n")
	case orders.StatusDelivered:
		b.WriteString("\n✅ ¡Tu paquete ha sido entregado! Gracias por confiar en nosotros.\n")
	}

	if trackURL != "" {
		fmt.Fprintf(&b, "\nRastrea tu pedido: %s\n", trackURL)
	}
	b.WriteString("\n¿Tienes preguntas? Responde a este mensaje y nuestro asistente te ayudará.\n\n")
	b.WriteString("The Yellow Express - Tu conexión entre LA y El Salvador 🇺🇸✈️🇸🇻")
	return b.String()
}

func statusEmail(o *orders.Order, trackURL, notes string) (subject, body string) {
	subject = fmt.Sprintf("📦 Actualización de tu pedido %s - %s", o.TrackingNumber, o.Status.Label())

	var b strings.Builder
	fmt.Fprintf(&b, "Hola %s,\n\n", o.CustomerName)
	b.WriteString("Tu pedido ha sido actualizado con el siguiente estado:\n\n")
	fmt.Fprintf(&b, "Número de guía: %s\n", o.TrackingNumber)
	fmt.Fprintf(&b, "Estado: %s\n", o.Status.Label())
	fmt.Fprintf(&b, "Destino: %s, %s\n", o.DestinationCity, o.DestinationCountry)
	if notes != "" {
		fmt.Fprintf(&b, "Notas: %s\n", notes)
	}

	switch o.Status {
	case orders.StatusOutForDelivery:
		b.WriteString("\n🏍️ ¡Tu paquete está en camino! Prepárate para recibirlo.\n")
	case orders.StatusDelivered:
		b.WriteString("\n✅ ¡Tu paquete ha sido entregado! Gracias por confiar en nosotros.\n")
	}

	if trackURL != "" {
		fmt.Fprintf(&b, "\nRastrea tu pedido: %s\n", trackURL)
	}
	b.WriteString("\n¿Tienes preguntas? Contáctanos por WhatsApp o responde a este correo.\n")
	b.WriteString("The Yellow Express - Envíos confiables entre Los Ángeles y El Salvador\n")
	return subject, b.String()
}
