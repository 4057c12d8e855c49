package aoai

// ChatModel identifies an Azure OpenAI chat model deployment.
type ChatModel string

const (
	ChatModelGPT41Mini ChatModel = "gpt-4.1-mini"
	ChatModelGPT4oMini ChatModel = "gpt-4o-mini"

	// DefaultChatModel is used when no model is configured.
	DefaultChatModel = ChatModelGPT41Mini
)

// EmbeddingModel identifies an Azure OpenAI embedding model deployment.
type EmbeddingModel string

const (
	EmbeddingModel3Large EmbeddingModel = "text-embedding-3-large"

	// DefaultEmbeddingModel is used when no embedding model is configured.
	DefaultEmbeddingModel = EmbeddingModel3Large
)

// APIVersion is the Azure OpenAI service API version string.
type APIVersion string

const (
	APIVersion20240801Preview APIVersion = "2024-08-01-preview"

	// DefaultAPIVersion is used when no API version is configured.
	DefaultAPIVersion = APIVersion20240801Preview
)

// ChatModels lists the known chat models.
func ChatModels() []ChatModel {
	return []ChatModel{ChatModelGPT41Mini, ChatModelGPT4oMini}
}

// EmbeddingModels lists the known embedding models.
func EmbeddingModels() []EmbeddingModel {
	return []EmbeddingModel{EmbeddingModel3Large}
}
