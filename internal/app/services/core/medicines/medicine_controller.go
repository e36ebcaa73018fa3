package medicines

import (
	"clinicare-service/internal/app/config"
	"clinicare-service/internal/pkg/constvars"
	"clinicare-service/internal/pkg/dto/requests"
	"clinicare-service/internal/pkg/exceptions"
	"clinicare-service/internal/pkg/utils"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MedicineController struct {
	Log             *zap.Logger
	MedicineUsecase MedicineUsecase
	InternalConfig  *config.InternalConfig
}

func NewMedicineController(logger *zap.Logger, medicineUsecase MedicineUsecase, internalConfig *config.InternalConfig) *MedicineController {
	return &MedicineController{
		Log:             logger,
		MedicineUsecase: medicineUsecase,
		InternalConfig:  internalConfig,
	}
}

func (ctrl *MedicineController) CreateMedicine(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateMedicine)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeCreateMedicineRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.MedicineUsecase.CreateMedicine(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateMedicineSuccessMessage, result)
}

func (ctrl *MedicineController) GetMedicines(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	pagination := utils.BuildPaginationRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, total, err := ctrl.MedicineUsecase.GetMedicines(ctx, category, pagination)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	paginationResponse := utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetMedicinesSuccessMessage, paginationResponse, result)
}

func (ctrl *MedicineController) GetMedicineByID(w http.ResponseWriter, r *http.Request) {
	medicineID := chi.URLParam(r, "medicineID")
	if err := utils.ValidateObjectIDParam(medicineID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, "medicineID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.MedicineUsecase.GetMedicineByID(ctx, medicineID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMedicineSuccessMessage, result)
}

func (ctrl *MedicineController) UpdateMedicineStock(w http.ResponseWriter, r *http.Request) {
	medicineID := chi.URLParam(r, "medicineID")
	if err := utils.ValidateObjectIDParam(medicineID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, "medicineID"))
		return
	}

	request := new(requests.UpdateMedicineStock)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.MedicineUsecase.UpdateMedicineStock(ctx, medicineID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateMedicineStockSuccessMessage, result)
}

func (ctrl *MedicineController) UploadMedicineImage(w http.ResponseWriter, r *http.Request) {
	medicineID := chi.URLParam(r, "medicineID")
	if err := utils.ValidateObjectIDParam(medicineID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, "medicineID"))
		return
	}

	maxUploadSizeInMB := ctrl.InternalConfig.App.MedicineImageMaxUploadSizeInMB
	if err := r.ParseMultipartForm(maxUploadSizeInMB << 20); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, fileHeader, err := r.FormFile("image")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	if err := utils.ValidateImageFormat(fileHeader.Filename, constvars.ImageAllowedMedicineFormats); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(err))
		return
	}
	if err := utils.ValidateImageSize(fileHeader.Size, maxUploadSizeInMB); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(err))
		return
	}

	contentType := fileHeader.Header.Get(constvars.HeaderContentType)

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	result, err := ctrl.MedicineUsecase.UploadMedicineImage(ctx, medicineID, fileHeader.Filename, file, fileHeader.Size, contentType)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UploadMedicineImageSuccessMessage, result)
}
