package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/teamtrack/project-management-api/internal/logging"
	"github.com/teamtrack/project-management-api/internal/models"
)

// Seed inserts the fixed reference data (roles, positions, statuses,
// priorities) into empty lookup tables. Tables that already hold rows are
// left untouched, so repeated startups are safe.
func Seed(db *gorm.DB) error {
	if err := seedRoles(db); err != nil {
		return fmt.Errorf("failed to seed roles: %w", err)
	}
	if err := seedPositions(db); err != nil {
		return fmt.Errorf("failed to seed positions: %w", err)
	}
	if err := seedTaskPriorities(db); err != nil {
		return fmt.Errorf("failed to seed task priorities: %w", err)
	}
	if err := seedTaskStatuses(db); err != nil {
		return fmt.Errorf("failed to seed task statuses: %w", err)
	}
	if err := seedProjectStatuses(db); err != nil {
		return fmt.Errorf("failed to seed project statuses: %w", err)
	}

	logging.Logger.Info("reference data seeded")
	return nil
}

func seedRoles(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Role{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	roles := []models.Role{
		{Name: models.RoleEmployee},
		{Name: models.RoleManager},
	}
	return db.Create(&roles).Error
}

func seedPositions(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Position{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	positions := []models.Position{
		{Name: "Директор"},
		{Name: "Менеджер"},
		{Name: "Сотрудник"},
		{Name: "Инженер"},
		{Name: "Программист"},
		{Name: "Тестировщик"},
		{Name: "Дизайнер"},
		{Name: "Бухгалтер"},
	}
	return db.Create(&positions).Error
}

func seedTaskPriorities(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.TaskPriority{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	priorities := []models.TaskPriority{
		{Name: "Низкий"},
		{Name: "Средний"},
		{Name: "Высокий"},
	}
	return db.Create(&priorities).Error
}

func seedTaskStatuses(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.TaskStatus{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	statuses := []models.TaskStatus{
		{Name: "Новая"},
		{Name: "В работе"},
		{Name: "Завершена"},
	}
	return db.Create(&statuses).Error
}

func seedProjectStatuses(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.ProjectStatus{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	statuses := []models.ProjectStatus{
		{Name: "Новый"},
		{Name: "В работе"},
		{Name: "Завершен"},
	}
	return db.Create(&statuses).Error
}
