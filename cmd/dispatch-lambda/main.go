// Command dispatch-lambda runs the email dispatcher as a standalone function
// behind API Gateway, mirroring the original serverless deployment. The API
// server points at it via DISPATCH_URL.
package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	appconfig "github.com/NexaiGuy/nexai-website/internal/config"
	"github.com/NexaiGuy/nexai-website/internal/dispatch"
	"github.com/NexaiGuy/nexai-website/internal/notify"
	"github.com/NexaiGuy/nexai-website/pkg/logging"
)

func main() {
	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)

	sender := notify.NewSendGridSender(notify.SendGridConfig{
		APIKey:    cfg.SendGridAPIKey,
		FromEmail: cfg.SendGridVerifiedSender,
		FromName:  cfg.SendGridFromName,
	}, logger)

	var emailSender notify.EmailSender
	if sender != nil {
		emailSender = sender
	} else {
		logger.Warn("SENDGRID_API_KEY not set, emails will not be sent")
		emailSender = notify.NewStubEmailSender(logger)
	}

	service := dispatch.NewService(emailSender, cfg.CompanyEmail, nil, logger)

	lambda.Start(func(ctx context.Context, evt events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		return handle(ctx, service, evt)
	})
}

func handle(ctx context.Context, service *dispatch.Service, evt events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	method := strings.ToUpper(strings.TrimSpace(evt.RequestContext.HTTP.Method))
	path := strings.TrimSpace(evt.RawPath)
	if path == "" {
		path = strings.TrimSpace(evt.RequestContext.HTTP.Path)
	}

	if path == "/health" || path == "/_health" {
		return events.APIGatewayV2HTTPResponse{StatusCode: http.StatusOK, Body: "ok"}, nil
	}

	if method != http.MethodPost {
		return events.APIGatewayV2HTTPResponse{StatusCode: http.StatusMethodNotAllowed}, nil
	}

	body, err := decodeBody(evt)
	if err != nil {
		return jsonResponse(http.StatusBadRequest, &dispatch.Result{
			Success: false,
			Error:   "invalid request body",
			Details: err.Error(),
		})
	}

	var req dispatch.EmailDispatchRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return jsonResponse(http.StatusBadRequest, &dispatch.Result{
			Success: false,
			Error:   "invalid request body",
			Details: err.Error(),
		})
	}

	result, err := service.Dispatch(ctx, &req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, dispatch.ErrMissingContactFields) {
			status = http.StatusBadRequest
		}
		return jsonResponse(status, &dispatch.Result{
			Success: false,
			Error:   "Failed to send emails",
			Details: err.Error(),
		})
	}

	return jsonResponse(http.StatusOK, result)
}

func decodeBody(evt events.APIGatewayV2HTTPRequest) ([]byte, error) {
	if !evt.IsBase64Encoded {
		return []byte(evt.Body), nil
	}
	return base64.StdEncoding.DecodeString(evt.Body)
}

func jsonResponse(status int, res *dispatch.Result) (events.APIGatewayV2HTTPResponse, error) {
	body, err := json.Marshal(res)
	if err != nil {
		return events.APIGatewayV2HTTPResponse{StatusCode: http.StatusInternalServerError}, nil
	}
	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Body:       string(body),
		Headers:    map[string]string{"content-type": "application/json"},
	}, nil
}
