// Package openai calls the OpenAI Responses API with strict JSON-schema
// output formats.
package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/nutriweek/nutriweek/internal/catalog"
	"github.com/nutriweek/nutriweek/internal/model"
	"github.com/nutriweek/nutriweek/internal/provider"
)

// Options configures the client. Model defaults and determinism controls come
// from service config.
type Options struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float64
	TopP        float64
	Seed        *int
	Timeout     time.Duration
}

// Client implements provider.SuggestionProvider against the Responses API.
type Client struct {
	http *resty.Client
	opts Options
	cat  *catalog.Catalog
	log  zerolog.Logger
}

// New builds a client. The call timeout is bounded (60s default); provider
// failures are surfaced, never retried.
func New(opts Options, cat *catalog.Catalog, log zerolog.Logger) (*Client, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("openai: API key is not set")
	}
	if opts.BaseURL == "" {
		opts.BaseURL = "https://api.openai.com/v1"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 60 * time.Second
	}
	c := resty.New().
		SetBaseURL(opts.BaseURL).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(opts.APIKey).
		SetTimeout(opts.Timeout)
	return &Client{http: c, opts: opts, cat: cat, log: log}, nil
}

type textFormat struct {
	Type   string     `json:"type"`
	Name   string     `json:"name"`
	Schema jsonSchema `json:"schema"`
	Strict bool       `json:"strict"`
}

type responsesRequest struct {
	Model       string             `json:"model"`
	Input       []provider.Message `json:"input"`
	Temperature float64            `json:"temperature"`
	TopP        float64            `json:"top_p"`
	Seed        *int               `json:"seed,omitempty"`
	Text        struct {
		Format textFormat `json:"format"`
	} `json:"text"`
}

type responsesOutput struct {
	Output []struct {
		Content []struct {
			JSON json.RawMessage `json:"json"`
			Text string          `json:"text"`
		} `json:"content"`
	} `json:"output"`
}

// call posts one structured-output request and returns the raw JSON payload
// matching the supplied schema.
func (c *Client) call(ctx context.Context, messages []provider.Message, schema jsonSchema, name string) (json.RawMessage, error) {
	req := responsesRequest{
		Model:       c.opts.Model,
		Input:       messages,
		Temperature: c.opts.Temperature,
		TopP:        c.opts.TopP,
		Seed:        c.opts.Seed,
	}
	req.Text.Format = textFormat{Type: "json_schema", Name: name, Schema: schema, Strict: true}

	c.log.Info().Str("response_name", name).Str("model", c.opts.Model).Msg("suggestion request")

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(&req).
		Post("/responses")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrUpstream, err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		c.log.Error().Int("status", resp.StatusCode()).Str("body", resp.String()).Msg("suggestion request failed")
		return nil, fmt.Errorf("%w: status %d: %s", model.ErrUpstream, resp.StatusCode(), resp.String())
	}

	var out responsesOutput
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", model.ErrUpstream, err)
	}
	if len(out.Output) == 0 || len(out.Output[0].Content) == 0 {
		return nil, fmt.Errorf("%w: response did not include structured content", model.ErrUpstream)
	}
	item := out.Output[0].Content[0]
	if len(item.JSON) > 0 {
		return item.JSON, nil
	}
	if item.Text != "" {
		if !json.Valid([]byte(item.Text)) {
			return nil, fmt.Errorf("%w: response text is not valid JSON", model.ErrUpstream)
		}
		return json.RawMessage(item.Text), nil
	}
	return nil, fmt.Errorf("%w: response content is empty", model.ErrUpstream)
}

// SuggestMeals requests a two-meal plan and validates it against the catalog.
func (c *Client) SuggestMeals(ctx context.Context, messages []provider.Message) (*provider.MealPlan, error) {
	raw, err := c.call(ctx, messages, mealPlanSchema(c.cat), "meal_suggestions")
	if err != nil {
		return nil, err
	}
	var plan provider.MealPlan
	if err := json.Unmarshal(raw, &plan); err != nil {
		return nil, fmt.Errorf("%w: decode meal plan: %v", model.ErrUpstream, err)
	}
	if err := provider.CheckMealPlan(c.cat, &plan); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrUpstream, err)
	}
	return &plan, nil
}

// CompleteRecipe requests a full recipe for a user meal concept.
func (c *Client) CompleteRecipe(ctx context.Context, messages []provider.Message) (*provider.CompletedRecipe, error) {
	raw, err := c.call(ctx, messages, recipeSchema(c.cat), "completed_recipe")
	if err != nil {
		return nil, err
	}
	var recipe provider.CompletedRecipe
	if err := json.Unmarshal(raw, &recipe); err != nil {
		return nil, fmt.Errorf("%w: decode recipe: %v", model.ErrUpstream, err)
	}
	if err := provider.CheckProfile(c.cat, recipe.Nutrition); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrUpstream, err)
	}
	return &recipe, nil
}

// EstimateNutrition requests nutrition facts for a described meal.
func (c *Client) EstimateNutrition(ctx context.Context, messages []provider.Message) (*provider.NutritionEstimate, error) {
	raw, err := c.call(ctx, messages, estimateSchema(c.cat), "manual_meal_nutrition")
	if err != nil {
		return nil, err
	}
	var est provider.NutritionEstimate
	if err := json.Unmarshal(raw, &est); err != nil {
		return nil, fmt.Errorf("%w: decode estimate: %v", model.ErrUpstream, err)
	}
	if err := provider.CheckProfile(c.cat, est.Nutrition); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrUpstream, err)
	}
	return &est, nil
}

// HealthPing verifies the API is reachable with the configured credentials.
func (c *Client) HealthPing(ctx context.Context) error {
	resp, err := c.http.R().SetContext(ctx).Get("/models/" + c.opts.Model)
	if err != nil {
		return err
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("openai status %d", resp.StatusCode())
	}
	return nil
}
