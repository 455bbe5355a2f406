package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/aruiz-dev/tasklist/internal/models"
)

// Every owner-scoped query filters on id AND owner_id in a single WHERE so a
// task id alone never grants access to another user's row.

func (r *GormRepo) CreateTask(ctx context.Context, task *models.Task) error {
	task.Completed = false
	return r.DB.WithContext(ctx).Create(task).Error
}

func (r *GormRepo) ListTasksByOwner(ctx context.Context, ownerID uint, offset, limit int) ([]models.Task, error) {
	items := make([]models.Task, 0, limit)
	if err := r.DB.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetTaskByIDAndOwner(ctx context.Context, id, ownerID uint) (*models.Task, error) {
	var task models.Task
	if err := r.DB.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *GormRepo) UpdateTask(ctx context.Context, id, ownerID uint, title, description string) (*models.Task, error) {
	var task models.Task
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Task{}).
			Where("id = ? AND owner_id = ?", id, ownerID).
			Updates(map[string]any{"title": title, "description": description})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("id = ? AND owner_id = ?", id, ownerID).First(&task).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *GormRepo) CompleteTask(ctx context.Context, id, ownerID uint) (*models.Task, error) {
	var task models.Task
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Task{}).
			Where("id = ? AND owner_id = ?", id, ownerID).
			Update("completed", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("id = ? AND owner_id = ?", id, ownerID).First(&task).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *GormRepo) DeleteTask(ctx context.Context, id, ownerID uint) (bool, error) {
	res := r.DB.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.Task{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
