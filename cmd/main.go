package main

import (
	"log"
	"os"

	"github.com/pmarsh41/my-agent/config"
	"github.com/pmarsh41/my-agent/controllers"
	"github.com/pmarsh41/my-agent/routes"
	"github.com/pmarsh41/my-agent/services"
	"github.com/pmarsh41/my-agent/utils"
)

func main() {
	config.LoadEnv()
	config.InitDB()
	utils.InitS3()

	catalog, err := services.NewCatalog()
	if err != nil {
		log.Fatalf("Failed to load nutrition catalog: %v", err)
	}

	pipeline := config.LoadPipeline()
	matcher := services.NewMatcherService(catalog, pipeline)
	portions := services.NewPortionService()
	confidence := services.NewConfidenceService(pipeline)

	identifier, err := buildIdentifier()
	if err != nil {
		log.Fatalf("Failed to initialize food identifier: %v", err)
	}

	analysis := services.NewAnalysisService(catalog, matcher, portions, confidence, identifier, buildEvaluationSink())
	mealSvc := services.NewMealService()

	r := routes.SetupRouter(
		controllers.NewAnalysisController(analysis),
		controllers.NewFoodController(catalog, matcher),
		controllers.NewMealController(mealSvc),
	)
	r.Run(":8080")
}

// buildIdentifier prefers the OpenAI vision model and falls back to
// Rekognition label detection when no API key is configured.
func buildIdentifier() (services.FoodIdentifier, error) {
	if os.Getenv("OPENAI_API_KEY") != "" {
		return services.NewVisionService(), nil
	}
	log.Println("OPENAI_API_KEY not set, using Rekognition label detection")
	return services.NewRekognitionService()
}

func buildEvaluationSink() services.EvaluationSink {
	path := os.Getenv("EVAL_SAMPLES_PATH")
	if path == "" {
		return services.NoOpEvaluationSink{}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Printf("cannot open evaluation sample file %s: %v", path, err)
		return services.NoOpEvaluationSink{}
	}
	return services.NewJSONLinesEvaluationSink(f)
}
