package telegram

import "time"

const (
	logPrefixWebhook = "internal.router.delivery.telegram.HandleWebhook"
	logPrefixProcess = "internal.router.delivery.telegram.processMessage"

	// processTimeout bounds one background classification, model call included.
	processTimeout = 60 * time.Second
)

const (
	commandStart = "/start"
	commandHelp  = "/help"
)

const (
	msgWelcome = "Welcome to patient intake.\n\n" +
		"Tell me in your own words what you need, for example:\n" +
		"\"I need a follow-up for my hip surgery\" or \"I have a question about my bill\".\n\n" +
		"If this is a medical emergency, call your local emergency number now."
	msgHelp = "Send one message describing why you are contacting us. " +
		"I will tell you which department can help and what to have ready."
	msgProcessingFailed = "Sorry, we could not process your request. Please try again or call the front desk."
	msgEmergency        = "This sounds like it may be an emergency. Please call your local emergency number " +
		"or go to the nearest emergency department now."
	msgClarifyFallback = "Could you tell me a little more about what you need?"
)
