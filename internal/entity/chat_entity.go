package entity

// ChatContext is rebuilt for every chat request. A nil DashboardSnapshot is
// forwarded as-is; the model backend decides what absence means.
type ChatContext struct {
	DashboardSnapshot *DashboardStats
	LearningHours     float64
}
