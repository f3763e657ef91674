package controllers

import (
	"context"
	"net/http"
	"time"

	"avalia-service/internal/app/contracts"
	"avalia-service/internal/pkg/constvars"
	"avalia-service/internal/pkg/dto/requests"
	"avalia-service/internal/pkg/exceptions"
	"avalia-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PractitionerController struct {
	Log                 *zap.Logger
	PractitionerUsecase contracts.PractitionerUsecase
}

func NewPractitionerController(logger *zap.Logger, practitionerUsecase contracts.PractitionerUsecase) *PractitionerController {
	return &PractitionerController{
		Log:                 logger,
		PractitionerUsecase: practitionerUsecase,
	}
}

func (ctrl *PractitionerController) CreatePractitioner(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreatePractitioner)
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

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PractitionerUsecase.CreatePractitioner(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.PractitionerCreateSuccess, response)
}

func (ctrl *PractitionerController) FindPractitionerByID(w http.ResponseWriter, r *http.Request) {
	practitionerID := chi.URLParam(r, constvars.URLParamPractitionerID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PractitionerUsecase.FindPractitionerByID(ctx, practitionerID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PractitionerGetSuccess, response)
}

func (ctrl *PractitionerController) FindPractitioners(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PractitionerUsecase.FindPractitioners(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PractitionerListSuccess, response)
}

func (ctrl *PractitionerController) UpdatePractitioner(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpdatePractitioner)
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

	practitionerID := chi.URLParam(r, constvars.URLParamPractitionerID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PractitionerUsecase.UpdatePractitioner(ctx, practitionerID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PractitionerUpdateSuccess, response)
}
