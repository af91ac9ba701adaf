package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TaskStatus is the workflow state of a task.
type TaskStatus string

const (
	StatusBacklog    TaskStatus = "BACKLOG"
	StatusTodo       TaskStatus = "TODO"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusInReview   TaskStatus = "IN_REVIEW"
	StatusDone       TaskStatus = "DONE"
)

// TaskStatuses lists all statuses, for uniform draws.
var TaskStatuses = []TaskStatus{
	StatusBacklog, StatusTodo, StatusInProgress, StatusInReview, StatusDone,
}

// TaskPriority is the urgency of a task.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "LOW"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityHigh   TaskPriority = "HIGH"
)

// TaskPriorities lists all priorities, for uniform draws.
var TaskPriorities = []TaskPriority{PriorityLow, PriorityMedium, PriorityHigh}

// Task is created in bulk and never mutated by the seeder. AssignedTo,
// when set, must be a member of the task's workspace, and the project's
// workspace must equal the task's workspace.
type Task struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	TaskCode    string              `bson:"taskCode" json:"taskCode"`
	Title       string              `bson:"title" json:"title"`
	Description string              `bson:"description" json:"description"`
	Project     primitive.ObjectID  `bson:"project" json:"project"`
	Workspace   primitive.ObjectID  `bson:"workspace" json:"workspace"`
	Status      TaskStatus          `bson:"status" json:"status"`
	Priority    TaskPriority        `bson:"priority" json:"priority"`
	AssignedTo  *primitive.ObjectID `bson:"assignedTo" json:"assignedTo"`
	CreatedBy   primitive.ObjectID  `bson:"createdBy" json:"createdBy"`
	DueDate     *time.Time          `bson:"dueDate" json:"dueDate"`
	CreatedAt   time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time           `bson:"updatedAt" json:"updatedAt"`
}
