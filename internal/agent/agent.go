// Package agent implements the WhatsApp support assistant: tracking-number
// lookups answered locally from the database, everything else forwarded to
// the language model with a support-desk prompt.
package agent

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/theyellowexpress/expressbot/internal/llm"
	"github.com/theyellowexpress/expressbot/internal/orders"
)

// DefaultSupportWhatsApp is the human support line quoted in fallback replies.
const DefaultSupportWhatsApp = "+503 1234 5678"

// trackingPatterns are tried in order; the first match wins. Patterns with a
// capture group extract the number after a keyword, the rest match the whole
// tracking format.
var trackingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)YE\d{8}[A-Z0-9]{3}`),
	regexp.MustCompile(`(?i)gu[ií]a\s*[:#]?\s*([A-Z0-9]+)`),
	regexp.MustCompile(`(?i)pedido\s*[:#]?\s*([A-Z0-9]+)`),
	regexp.MustCompile(`(?i)paquete\s*[:#]?\s*([A-Z0-9]+)`),
	regexp.MustCompile(`(?i)tracking\s*[:#]?\s*([A-Z0-9]+)`),
	regexp.MustCompile(`(?i)#([A-Z0-9]{10,})`),
}

// extractTracking pulls a tracking-number candidate out of free text.
func extractTracking(text string) (string, bool) {
	for _, p := range trackingPatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if len(m) > 1 && m[1] != "" {
			return m[1], true
		}
		return m[0], true
	}
	return "", false
}

// OrderFinder looks orders up by tracking number. *orders.Store satisfies it.
type OrderFinder interface {
	GetByTracking(ctx context.Context, tracking string) (*orders.Order, error)
}

// Completer is the generative fallback. *llm.Bridge satisfies it.
type Completer interface {
	Complete(ctx context.Context, clientID string, messages []llm.Message) (string, error)
}

// Agent answers inbound support messages.
type Agent struct {
	orders       OrderFinder
	assistant    Completer
	transcript   *Store
	supportPhone string
}

// New creates an agent. transcript and assistant may be nil; supportPhone
// falls back to the default support line when empty.
func New(finder OrderFinder, assistant Completer, transcript *Store, supportPhone string) *Agent {
	if supportPhone == "" {
		supportPhone = DefaultSupportWhatsApp
	}
	return &Agent{orders: finder, assistant: assistant, transcript: transcript, supportPhone: supportPhone}
}

// ProcessMessage answers one inbound message from the given phone number.
// It always returns a customer-facing reply; internal failures degrade to an
// apology that points at the human support line.
func (a *Agent) ProcessMessage(ctx context.Context, phone, text string) string {
	a.record(ctx, phone, "user", text)
	reply := a.reply(ctx, phone, text)
	a.record(ctx, phone, "assistant", reply)
	return reply
}

func (a *Agent) reply(ctx context.Context, phone, text string) string {
	if tracking, ok := extractTracking(text); ok {
		order, err := a.orders.GetByTracking(ctx, tracking)
		if err != nil {
			log.Printf("agent: tracking lookup %q: %v", tracking, err)
			return a.technicalProblemReply()
		}
		if order == nil {
			return a.notFoundReply(tracking)
		}
		return formatOrderStatus(order)
	}

	if a.assistant == nil {
		return a.technicalProblemReply()
	}
	answer, err := a.assistant.Complete(ctx, phone, []llm.Message{
		{Role: llm.RoleSystem, Content: supportPrompt(a.supportPhone)},
		{Role: llm.RoleUser, Content: text},
	})
	if err != nil {
		log.Printf("agent: completion for %s: %v", phone, err)
		return a.technicalProblemReply()
	}
	if strings.TrimSpace(answer) == "" {
		return "Lo siento, no pude procesar tu mensaje. Por favor intenta de nuevo o contacta a soporte."
	}
	return answer
}

func (a *Agent) record(ctx context.Context, phone, role, message string) {
	if a.transcript == nil {
		return
	}
	if err := a.transcript.Append(ctx, phone, role, message); err != nil {
		log.Printf("agent: recording %s message: %v", role, err)
	}
}

func (a *Agent) notFoundReply(tracking string) string {
	return fmt.Sprintf(`❌ No encontré ningún pedido con el número *%s*.

Por favor verifica el número de guía e intenta de nuevo. Si el problema persiste, contacta a nuestro equipo de soporte.

📞 WhatsApp: %s`, tracking, a.supportPhone)
}

func (a *Agent) technicalProblemReply() string {
	return fmt.Sprintf(`⚠️ Disculpa, estoy teniendo problemas técnicos en este momento.

Por favor intenta de nuevo en unos minutos o contacta directamente a nuestro equipo:
📞 WhatsApp: %s

¡Gracias por tu paciencia!`, a.supportPhone)
}

// formatOrderStatus renders an order as a WhatsApp status card.
func formatOrderStatus(o *orders.Order) string {
	var b strings.Builder
	b.WriteString("📦 *Información de tu pedido*\n\n")
	fmt.Fprintf(&b, "🔢 *Guía:* %s\n", o.TrackingNumber)
	fmt.Fprintf(&b, "📊 *Estado:* %s\n", o.Status.Label())
	fmt.Fprintf(&b, "📍 *Destino:* %s, %s\n", o.DestinationCity, o.DestinationCountry)
	fmt.Fprintf(&b, "📅 *Fecha de creación:* %s", o.CreatedAt.Format("02/01/2006"))

	if o.EstimatedDelivery != nil {
		fmt.Fprintf(&b, "\n🗓️ *Entrega estimada:* %s", o.EstimatedDelivery.Format("02/01/2006"))
	}
	if o.Status == orders.StatusDelivered && o.DeliveredAt != nil {
		fmt.Fprintf(&b, "\n✅ *Entregado el:* %s", o.DeliveredAt.Format("02/01/2006"))
	}
	if o.Status == orders.StatusOutForDelivery {
		b.WriteString("\n\n🏍️ ¡Tu paquete está en camino! El motorista se comunicará contigo pronto.")
	}
	return b.String()
}

func supportPrompt(supportPhone string) string {
	return fmt.Sprintf(`Eres el asistente virtual de The Yellow Express, una empresa de envíos entre Los Ángeles, California y El Salvador. Tu nombre es "YellowBot".

INFORMACIÓN DE LA EMPRESA:
- Servicio de envíos de paquetes entre LA y El Salvador
- Tiempo de entrega estimado: 5-7 días hábiles
- Servicio de Personal Shopper disponible
- Horario de atención: Lunes a Sábado 8am-6pm (hora de El Salvador)
- WhatsApp de soporte: %s

TARIFAS APROXIMADAS:
- Paquetes pequeños (hasta 1 lb): $8-12
- Paquetes medianos (1-5 lbs): $15-25
- Paquetes grandes (5-10 lbs): $30-50
- Personal Shopper: 10%% del valor de compra + envío

ESTADOS DE PEDIDO:
- pending: Pedido creado, esperando procesamiento
- warehouse_la: Recibido en bodega de Los Ángeles
- warehouse_sv: Recibido en bodega de El Salvador
- in_transit_international: En tránsito entre países
- customs: En proceso de aduana
- assigned_to_driver: Asignado a motorista para entrega
- out_for_delivery: En ruta de entrega
- delivered: Entregado exitosamente

INSTRUCCIONES:
1. Responde siempre en español de manera amigable y profesional
2. Si el usuario pregunta por un pedido, pídele su número de guía
3. Proporciona información clara sobre estados y tiempos estimados
4. Si no puedes ayudar, sugiere contactar soporte humano
5. Mantén las respuestas concisas pero informativas
6. Usa emojis moderadamente para hacer la conversación más amigable`, supportPhone)
}
