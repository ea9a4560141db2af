package environment

import "os"

func GetOpenAIKey() string {
	return os.Getenv("OPENAI_API_KEY")
}

// GetOpenAIModel returns the chat model to use, defaulting to gpt-4o-mini.
func GetOpenAIModel() string {
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}
	return model
}

func GetRazorpayKeyID() string {
	return os.Getenv("RAZORPAY_KEY_ID")
}

func GetRazorpayKeySecret() string {
	return os.Getenv("RAZORPAY_KEY_SECRET")
}

func GetPort() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return port
}
