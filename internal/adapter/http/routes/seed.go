package routes

import (
	"context"
	"time"

	"repair_desk/internal/domain/entities"

	"github.com/google/uuid"
)

// DevCompanyID is the tenant the local seed data belongs to.
const DevCompanyID = "dev-company"

type orderWriter interface {
	Put(ctx context.Context, o entities.RepairOrder) error
}

type warehouseWriter interface {
	Put(ctx context.Context, companyID string, w entities.WarehouseItem) error
}

// seedDevData stores one open order and a few stock entries so the desk has
// something to work with against a fresh DynamoDB Local.
func seedDevData(ctx context.Context, orders orderWriter, warehouse warehouseWriter) error {
	now := time.Now().UTC()
	order := entities.RepairOrder{
		ID:        1,
		GUID:      uuid.NewString(),
		Code:      "OS-1",
		CompanyID: DevCompanyID,
		Status:    entities.OrderStatusDiagnosis,
		Customer:  entities.CustomerRef{ID: 1, FullName: "Ana Souza", Phone: "+55 11 99999-0000"},
		Device: entities.DeviceRef{
			ID: 1, Brand: "Apple", Model: "iPhone 12", SerialNumber: "F2LXK0ABCD12",
			Accessories: "case", Condition: "scratched back",
		},
		FaultDescription: "Does not charge",
		TechnicianID:     7,
		TechnicianName:   "Bruno",
		EstimatedPrice:   244,
		LaborAmount:      100,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := orders.Put(ctx, order); err != nil {
		return err
	}

	items := []entities.WarehouseItem{
		{ID: 1, Code: "BAT-IP12", Description: "Battery iPhone 12", UnitPrice: 45, AvailableStock: 8},
		{ID: 2, Code: "DCK-IP12", Description: "Charging port flex iPhone 12", UnitPrice: 25, AvailableStock: 3},
		{ID: 3, Code: "SCR-IP12", Description: "OLED screen iPhone 12", UnitPrice: 120, AvailableStock: 0},
	}
	for _, item := range items {
		if err := warehouse.Put(ctx, DevCompanyID, item); err != nil {
			return err
		}
	}
	return nil
}
