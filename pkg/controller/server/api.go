package server

import (
	"context"
	"encoding/json"
	"net/http"

	"log/slog"

	"github.com/secmon-lab/newgit/pkg/domain/interfaces"
	"github.com/secmon-lab/newgit/pkg/domain/model"
	"github.com/secmon-lab/newgit/pkg/utils/errutil"
	"github.com/secmon-lab/newgit/pkg/utils/logging"
)

const maxRequestBodySize = 64 * 1024

type errorResponse struct {
	ErrorKind string `json:"error_kind"`
	Message   string `json:"message"`
}

type createRepositoryResponse struct {
	URL      string          `json:"url"`
	FullName string          `json:"full_name"`
	Warnings []model.Warning `json:"warnings"`
}

type acceptedResponse struct {
	Status    string `json:"status"`
	RequestID string `json:"request_id"`
}

func statusCodeOf(kind model.ErrorKind) int {
	switch kind {
	case model.ErrorKindValidation:
		return http.StatusBadRequest
	case model.ErrorKindRepoExists:
		return http.StatusConflict
	case model.ErrorKindOwnerResolution:
		return http.StatusNotFound
	case model.ErrorKindRepoCreate, model.ErrorKindAuth:
		return http.StatusBadGateway
	case model.ErrorKindTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	kind := model.Classify(err)
	code := statusCodeOf(kind)

	if code >= http.StatusInternalServerError {
		errutil.HandleError(ctx, msg, err)
	} else {
		logging.From(ctx).Info(msg, slog.Any("error", err), slog.String("kind", string(kind)))
	}

	writeJSON(w, code, errorResponse{
		ErrorKind: string(kind),
		Message:   model.UserMessage(err),
	})
}

func handleCreateRepository(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req model.RepositoryRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodySize)).Decode(&req); err != nil {
			writeError(ctx, w, "fail to decode request body",
				model.NewValidationError("Request body must be a JSON object"))
			return
		}

		email := r.Header.Get(UserEmailHeader)
		decision, err := uc.Authorize(ctx, email)
		if err != nil {
			writeError(ctx, w, "fail to authorize requester", err)
			return
		}
		if !decision.Authorized {
			logging.From(ctx).Info("requester denied",
				slog.String("email", email),
				slog.String("reason", decision.Reason))
			writeJSON(w, http.StatusForbidden, errorResponse{
				ErrorKind: "unauthorized",
				Message:   decision.Reason,
			})
			return
		}
		req.RequestedBy = email

		if r.URL.Query().Get("async") == "true" {
			reqID, _ := logging.CtxRequestID(ctx)
			go runProvision(DetachContext(ctx), uc, &req)
			writeJSON(w, http.StatusAccepted, acceptedResponse{
				Status:    "accepted",
				RequestID: string(reqID),
			})
			return
		}

		result, err := uc.Provision(ctx, &req)
		if err != nil {
			writeError(ctx, w, "fail to provision repository", err)
			return
		}

		writeJSON(w, http.StatusCreated, newCreateRepositoryResponse(result))
	}
}

func newCreateRepositoryResponse(result *model.ProvisionResult) *createRepositoryResponse {
	warnings := result.Warnings
	if warnings == nil {
		warnings = []model.Warning{}
	}
	return &createRepositoryResponse{
		URL:      result.Repository.HTMLURL,
		FullName: result.Repository.FullName(),
		Warnings: warnings,
	}
}

func runProvision(ctx context.Context, uc interfaces.UseCase, req *model.RepositoryRequest) {
	result, err := uc.Provision(ctx, req)
	if err != nil {
		errutil.HandleError(ctx, "fail to provision repository in background", err)
		return
	}

	logging.From(ctx).Info("repository provisioned in background",
		slog.String("url", result.Repository.HTMLURL),
		slog.Int("warnings", len(result.Warnings)))
}

func handleSearchOwners(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owners := uc.SearchOwners(r.Context(), r.URL.Query().Get("prefix"))
		if owners == nil {
			owners = []string{}
		}
		writeJSON(w, http.StatusOK, map[string][]string{"owners": owners})
	}
}

func handleListTemplates(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		templates := uc.Templates()
		if templates == nil {
			templates = []string{}
		}
		writeJSON(w, http.StatusOK, map[string][]string{"templates": templates})
	}
}
