package controllers

import (
	"context"
	"net/http"
	"time"

	"avalia-service/internal/app/contracts"
	"avalia-service/internal/app/delivery/http/middlewares"
	"avalia-service/internal/pkg/constvars"
	"avalia-service/internal/pkg/dto/requests"
	"avalia-service/internal/pkg/exceptions"
	"avalia-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type BatteryController struct {
	Log            *zap.Logger
	BatteryUsecase contracts.BatteryUsecase
}

func NewBatteryController(logger *zap.Logger, batteryUsecase contracts.BatteryUsecase) *BatteryController {
	return &BatteryController{
		Log:            logger,
		BatteryUsecase: batteryUsecase,
	}
}

func (ctrl *BatteryController) OpenBattery(w http.ResponseWriter, r *http.Request) {
	request := new(requests.OpenBattery)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("BatteryController.OpenBattery called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQuestionnaireKey, request.QuestionnaireID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BatteryUsecase.OpenBattery(ctx, middlewares.ProfileFromContext(r.Context()), request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.BatteryOpenSuccess, response)
}

func (ctrl *BatteryController) GetBatteryState(w http.ResponseWriter, r *http.Request) {
	batteryID := chi.URLParam(r, constvars.URLParamBatteryID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BatteryUsecase.GetBatteryState(ctx, batteryID, middlewares.ProfileFromContext(r.Context()))
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BatteryGetSuccess, response)
}

func (ctrl *BatteryController) SubmitAnswers(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SubmitAnswers)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	batteryID := chi.URLParam(r, constvars.URLParamBatteryID)

	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("BatteryController.SubmitAnswers called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBatteryIDKey, batteryID),
		zap.Int("answer_count", len(request.Answers)),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BatteryUsecase.SubmitAnswers(ctx, batteryID, middlewares.ProfileFromContext(r.Context()), request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BatteryAnswersSuccess, response)
}

func (ctrl *BatteryController) StepBattery(w http.ResponseWriter, r *http.Request) {
	request := new(requests.StepBattery)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	batteryID := chi.URLParam(r, constvars.URLParamBatteryID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BatteryUsecase.StepBattery(ctx, batteryID, middlewares.ProfileFromContext(r.Context()), request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BatteryStepSuccess, response)
}

func (ctrl *BatteryController) CompleteBattery(w http.ResponseWriter, r *http.Request) {
	batteryID := chi.URLParam(r, constvars.URLParamBatteryID)

	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("BatteryController.CompleteBattery called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBatteryIDKey, batteryID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BatteryUsecase.CompleteBattery(ctx, batteryID, middlewares.ProfileFromContext(r.Context()))
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BatteryCompleteSuccess, response)
}
