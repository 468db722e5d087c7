package v1

import (
	"github.com/google/uuid"
	"github.com/shenikar/hospital_beds/internal/models"
)

func locationToModel(dto *LocationDTO) *models.Location {
	if dto == nil {
		return nil
	}
	return &models.Location{Latitude: dto.Latitude, Longitude: dto.Longitude}
}

func bedsToModel(beds map[string]int) models.Beds {
	if len(beds) == 0 {
		return nil
	}
	out := make(models.Beds, len(beds))
	for key, count := range beds {
		out[models.BedType(key)] = count
	}
	return out
}

// DTOToHospitalModel преобразует DTO создания в доменную модель
func DTOToHospitalModel(dto CreateHospitalRequest) *models.Hospital {
	return &models.Hospital{
		Name:       dto.Name,
		Address:    dto.Address,
		Landmark:   dto.Landmark,
		Type:       models.HospitalType(dto.Type),
		Contact:    models.Contact{Phone: dto.Contact.Phone, Email: dto.Contact.Email},
		Location:   locationToModel(dto.Location),
		Facilities: dto.Facilities,
		Beds:       bedsToModel(dto.Beds),
	}
}

// DTOToHospitalPatch преобразует DTO обновления в патч
func DTOToHospitalPatch(dto UpdateHospitalRequest) models.HospitalPatch {
	patch := models.HospitalPatch{
		Name:       dto.Name,
		Address:    dto.Address,
		Landmark:   dto.Landmark,
		Location:   locationToModel(dto.Location),
		Facilities: dto.Facilities,
		Beds:       bedsToModel(dto.Beds),
	}
	if dto.Type != nil {
		hType := models.HospitalType(*dto.Type)
		patch.Type = &hType
	}
	if dto.Contact != nil {
		patch.Contact = &models.Contact{Phone: dto.Contact.Phone, Email: dto.Contact.Email}
	}
	return patch
}

// ModelToHospitalResponse преобразует доменную модель в DTO для ответа
func ModelToHospitalResponse(model *models.Hospital) HospitalResponse {
	resp := HospitalResponse{
		ID:            model.ID,
		Name:          model.Name,
		Address:       model.Address,
		Landmark:      model.Landmark,
		Type:          string(model.Type),
		Contact:       ContactDTO{Phone: model.Contact.Phone, Email: model.Contact.Email},
		Facilities:    model.Facilities,
		Beds:          make(map[string]int, len(models.BedTypes)),
		TotalFreeBeds: model.TotalFreeBeds(),
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
	if resp.Facilities == nil {
		resp.Facilities = []string{}
	}
	if model.Location != nil {
		resp.Location = &LocationDTO{Latitude: model.Location.Latitude, Longitude: model.Location.Longitude}
	}
	for _, bt := range models.BedTypes {
		resp.Beds[string(bt)] = model.Beds.Count(bt)
	}
	return resp
}

// RowsToAvailabilityResponse преобразует выдачу поиска в DTO
func RowsToAvailabilityResponse(rows []models.AvailabilityRow, ranked bool) AvailabilityResponse {
	resp := AvailabilityResponse{
		Ranked:    ranked,
		Count:     len(rows),
		Hospitals: make([]AvailableHospitalResponse, len(rows)),
	}
	for i, row := range rows {
		item := AvailableHospitalResponse{
			HospitalResponse: ModelToHospitalResponse(row.Hospital),
			HasAnyFreeBeds:   row.HasAnyFreeBeds,
		}
		if d, ok := row.KnownDistance(); ok {
			item.DistanceKm = &d
		}
		resp.Hospitals[i] = item
	}
	return resp
}

// ModelToReservationResponse преобразует итог бронирования в DTO
func ModelToReservationResponse(result *models.ReservationResult) ReservationResponse {
	return ReservationResponse{
		HospitalID: result.HospitalID,
		BedType:    string(result.BedType),
		Booked:     result.Booked,
		ReservedAt: result.ReservedAt,
	}
}

// ModelToTripResponse преобразует оценку поездки в DTO
func ModelToTripResponse(hospitalID uuid.UUID, estimate *models.TripEstimate) TripResponse {
	return TripResponse{
		HospitalID: hospitalID,
		DistanceKm: estimate.DistanceKm,
		EtaMinutes: estimate.EtaMinutes,
		Mode:       string(estimate.Mode),
		Profile:    estimate.Routing.Profile,
		ServiceURL: estimate.Routing.ServiceURL,
		Route:      estimate.Routing.Feature(),
	}
}
