package dto

import (
	"time"

	"github.com/ilydev-openproject/salesaice/internal/entity"
	"github.com/shopspring/decimal"
)

// ReportRequest selects the period and sort order of a report.
type ReportRequest struct {
	Period string `json:"period"`
	Date   string `json:"date,omitempty"`
	Sort   string `json:"sort,omitempty"`
}

type TimeRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

type Summary struct {
	Revenue        int64           `json:"revenue"`
	Boxes          int64           `json:"boxes"`
	OrderCount     int             `json:"orderCount"`
	VisitCount     int             `json:"visitCount"`
	AvgOrderValue  decimal.Decimal `json:"avgOrderValue"`
	ConversionRate decimal.Decimal `json:"conversionRate"`
}

type StoreMetric struct {
	StoreId           int        `json:"storeId"`
	StoreName         string     `json:"storeName"`
	Revenue           int64      `json:"revenue"`
	Boxes             int64      `json:"boxes"`
	OrderCount        int        `json:"orderCount"`
	VisitCount        int        `json:"visitCount"`
	LastActivity      *time.Time `json:"lastActivity,omitempty"`
	DaysSinceActivity *int       `json:"daysSinceActivity,omitempty"`
}

type ProductMetric struct {
	ProductId      int      `json:"productId"`
	ProductName    string   `json:"productName"`
	Boxes          int64    `json:"boxes"`
	Revenue        int64    `json:"revenue"`
	OrderCount     int      `json:"orderCount"`
	AvgReorderDays *float64 `json:"avgReorderDays,omitempty"`
}

type StoreReport struct {
	Period  TimeRange     `json:"period"`
	Sort    string        `json:"sort"`
	Summary Summary       `json:"summary"`
	Stores  []StoreMetric `json:"stores"`
}

type ProductReport struct {
	Period   TimeRange       `json:"period"`
	Sort     string          `json:"sort"`
	Summary  Summary         `json:"summary"`
	Products []ProductMetric `json:"products"`
}

type RewardStatus struct {
	StoreId    int    `json:"storeId"`
	Month      string `json:"month"`
	Boxes      int64  `json:"boxes"`
	Threshold  int64  `json:"threshold"`
	Eligible   int64  `json:"eligible"`
	Claimed    int64  `json:"claimed"`
	Pending    int64  `json:"pending"`
	HasPending bool   `json:"hasPending"`
}

type ReorderVelocity struct {
	ProductId   int     `json:"productId"`
	ProductName string  `json:"productName"`
	Orders      int     `json:"orders"`
	GapsDays    []int   `json:"gapsDays"`
	AvgGapDays  float64 `json:"avgGapDays"`
}

type MonthlyTarget struct {
	BoxGoal     int64 `json:"boxGoal"`
	RevenueGoal int64 `json:"revenueGoal"`
}

type TargetProgress struct {
	Target          MonthlyTarget   `json:"target"`
	Boxes           int64           `json:"boxes"`
	Revenue         int64           `json:"revenue"`
	BoxProgress     decimal.Decimal `json:"boxProgress"`
	RevenueProgress decimal.Decimal `json:"revenueProgress"`
}

type Dashboard struct {
	Today         Summary        `json:"today"`
	Month         Summary        `json:"month"`
	PreviousMonth Summary        `json:"previousMonth"`
	RevenueChange *float64       `json:"revenueChange,omitempty"`
	BoxesChange   *float64       `json:"boxesChange,omitempty"`
	Progress      TargetProgress `json:"progress"`
}

func ConvertEntitySummaryToDto(s entity.Summary) Summary {
	return Summary{
		Revenue:        s.Revenue,
		Boxes:          s.Boxes,
		OrderCount:     s.OrderCount,
		VisitCount:     s.VisitCount,
		AvgOrderValue:  s.AvgOrderValue,
		ConversionRate: s.ConversionRate,
	}
}

func ConvertEntityTimeRangeToDto(tr entity.TimeRange) TimeRange {
	return TimeRange{From: tr.From, To: tr.To}
}

func ConvertEntityStoreMetricsToDto(ms []entity.StoreMetric) []StoreMetric {
	out := make([]StoreMetric, 0, len(ms))
	for _, m := range ms {
		sm := StoreMetric{
			StoreId:           m.StoreId,
			StoreName:         m.StoreName,
			Revenue:           m.Revenue,
			Boxes:             m.Boxes,
			OrderCount:        m.OrderCount,
			VisitCount:        m.VisitCount,
			DaysSinceActivity: m.DaysSinceActivity,
		}
		if !m.LastActivity.IsZero() {
			la := m.LastActivity
			sm.LastActivity = &la
		}
		out = append(out, sm)
	}
	return out
}

func ConvertEntityProductMetricsToDto(ms []entity.ProductMetric) []ProductMetric {
	out := make([]ProductMetric, 0, len(ms))
	for _, m := range ms {
		out = append(out, ProductMetric{
			ProductId:      m.ProductId,
			ProductName:    m.ProductName,
			Boxes:          m.Boxes,
			Revenue:        m.Revenue,
			OrderCount:     m.OrderCount,
			AvgReorderDays: m.AvgReorderDays,
		})
	}
	return out
}

func ConvertEntityRewardStatusToDto(rs entity.RewardStatus) RewardStatus {
	return RewardStatus{
		StoreId:    rs.StoreId,
		Month:      rs.MonthKey,
		Boxes:      rs.Boxes,
		Threshold:  rs.Threshold,
		Eligible:   rs.Eligible,
		Claimed:    rs.Claimed,
		Pending:    rs.Pending,
		HasPending: rs.HasPending(),
	}
}

func ConvertEntityVelocityToDto(vs []entity.ReorderVelocity) []ReorderVelocity {
	out := make([]ReorderVelocity, 0, len(vs))
	for _, v := range vs {
		out = append(out, ReorderVelocity{
			ProductId:   v.ProductId,
			ProductName: v.ProductName,
			Orders:      v.Orders,
			GapsDays:    v.GapsDays,
			AvgGapDays:  v.AvgGapDays,
		})
	}
	return out
}

func ConvertEntityTargetToDto(t entity.MonthlyTarget) MonthlyTarget {
	return MonthlyTarget{BoxGoal: t.BoxGoal, RevenueGoal: t.RevenueGoal}
}

func ConvertTargetToEntity(t *MonthlyTarget) *entity.MonthlyTarget {
	return &entity.MonthlyTarget{BoxGoal: t.BoxGoal, RevenueGoal: t.RevenueGoal}
}

func ConvertEntityDashboardToDto(d *entity.Dashboard) Dashboard {
	return Dashboard{
		Today:         ConvertEntitySummaryToDto(d.Today),
		Month:         ConvertEntitySummaryToDto(d.Month),
		PreviousMonth: ConvertEntitySummaryToDto(d.PreviousMonth),
		RevenueChange: d.RevenueChange,
		BoxesChange:   d.BoxesChange,
		Progress: TargetProgress{
			Target:          ConvertEntityTargetToDto(d.Progress.Target),
			Boxes:           d.Progress.Boxes,
			Revenue:         d.Progress.Revenue,
			BoxProgress:     d.Progress.BoxProgress,
			RevenueProgress: d.Progress.RevenueProgress,
		},
	}
}

// Snapshot is the precomputed month ranking.
type Snapshot struct {
	Month      string          `json:"month"`
	ComputedAt time.Time       `json:"computedAt"`
	Summary    Summary         `json:"summary"`
	Stores     []StoreMetric   `json:"stores"`
	Products   []ProductMetric `json:"products"`
}

func ConvertEntitySnapshotToDto(s *entity.Snapshot) Snapshot {
	return Snapshot{
		Month:      s.MonthKey,
		ComputedAt: s.ComputedAt,
		Summary:    ConvertEntitySummaryToDto(s.Summary),
		Stores:     ConvertEntityStoreMetricsToDto(s.Stores),
		Products:   ConvertEntityProductMetricsToDto(s.Products),
	}
}
