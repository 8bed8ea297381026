package chat

import "regexp"

// Intent patterns consulted by the router and the order flow. All matching
// runs over the lowercased input.
var (
	startOrderPattern  = regexp.MustCompile(`hacer.*pedido|crear.*pedido|quiero.*pedir|necesito.*enviar.*a|enviar.*paquete.*a`)
	affirmativePattern = regexp.MustCompile(`^(sí|si|claro|dale|ok|va|vamos)$`)
	greetingPattern    = regexp.MustCompile(`^(hola|hey|buenas?|buenos?|hi|hello|qué tal|que tal|saludos)$`)
	priceWordPattern   = regexp.MustCompile(`^(precio|precios|cuanto|cuánto|tarifa|costo)s?$`)
	priceAskPattern    = regexp.MustCompile(`cuánto.*cuesta|cuanto.*cuesta|cuál.*precio|cual.*precio`)
	whatCanSendPattern = regexp.MustCompile(`qué puedo|que puedo|permitido|que si puedo`)
	deliveryPattern    = regexp.MustCompile(`cuánto tarda|cuanto tarda|tiempo|días|dias|demora|llega|cuando llega`)
	thanksPattern      = regexp.MustCompile(`gracias|thank|genial|excelente|perfecto`)
	cancelPattern      = regexp.MustCompile(`cancelar|salir|no quiero|olvidalo|olvídalo`)
	confirmYesPattern  = regexp.MustCompile(`sí|si|confirmo|correcto|dale|ok|va`)
	confirmNoPattern   = regexp.MustCompile(`no|cancelar|corregir|cambiar`)
)

// greetingReplies are the fixed greeting variants; one is picked at random.
var greetingReplies = []string{
	"¡Hola! 👋 Soy el asistente de Yellow Express. ¿En qué puedo ayudarte hoy?\n\nPuedo ayudarte con:\n• Cotizaciones de envío\n• Crear pedidos\n• Información sobre qué puedes enviar",
	"¡Hola! ¿Cómo estás? Cuéntame qué necesitas enviar y te ayudo con la cotización.",
	"¡Buenas! Estoy aquí para ayudarte con tus envíos a El Salvador. ¿Qué necesitas?",
}

const (
	replyStartOrder = "Perfecto, vamos a crear tu pedido. Primero cuéntame, ¿qué producto o artículos vas a enviar?"

	replyStartOrderAfterQuote = "Perfecto, vamos a crear tu pedido. ¿Qué producto o artículos vas a enviar?"

	replyWhatCanSend = "✅ **Puedes enviar:**\n\n• Ropa, zapatos y accesorios\n• Electrónicos (celulares, laptops, tablets)\n• Juguetes y artículos para niños\n• Vitaminas y suplementos\n• Artículos para el hogar\n• Herramientas pequeñas\n\n⚠️ Electrónicos nuevos de más de $200 necesitan factura.\n\n¿Qué vas a enviar?"

	replyDeliveryTime = "⏱️ **Tiempo de entrega: 7-12 días hábiles**\n\n• Recepción en LA: 1-2 días\n• Vuelo a El Salvador: 5-7 días\n• Entrega a domicilio: 1-3 días\n\nHacemos envíos cada semana."

	replyThanks = "¡Con gusto! 😊 Si necesitas algo más, aquí estoy."

	replyCancelled = "Entendido, cancelé el pedido. Si necesitas algo más, aquí estoy."

	replyCancelledAtConfirm = `Entendido, cancelé el pedido. Si quieres empezar de nuevo, solo dime "quiero hacer un pedido".`

	replyAskMoreProductDetail = "Necesito más detalle sobre el producto. ¿Qué vas a enviar?"

	replyWeightNotUnderstood = `No entendí el peso. Dime un número, por ejemplo "5 libras" o simplemente "5".`

	replyNeedFullName = "Necesito tu nombre completo para el pedido."

	replyPhoneNotRecognized = "No reconocí el número. Por favor escríbelo con el código de país, por ejemplo: +503 7890 1234"

	replyAskCity = "¿En qué ciudad se entrega? Por ejemplo: San Salvador, Santa Ana, San Miguel..."

	replyNeedFullAddress = "Necesito la dirección completa con colonia, calle y número de casa."

	replyConfirmYesNo = `¿Confirmas el pedido? Responde "sí" para confirmar o "no" para cancelar.`

	replyClientRateLimited = "⏳ Has enviado muchos mensajes. Espera un momento antes de continuar."

	replyServiceBusy = "⏳ El servicio está ocupado. Espera unos segundos e intenta de nuevo.\n\nMientras tanto, puedo ayudarte con:\n• **Cotización**: dime el peso (ej: \"5 libras\")\n• **Crear pedido**: di \"hacer un pedido\"\n• **Precios**: pregunta \"cuánto cuesta\""

	replyServiceDown = "Hubo un problema técnico. Intenta con:\n\n• \"5 libras\" para cotizar\n• \"hacer un pedido\" para crear uno\n• \"qué puedo enviar\" para ver artículos"
)
