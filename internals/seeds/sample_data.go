// file: internals/seeds/sample_data.go
package seeds

import (
	"time"

	"github.com/lib/pq"

	"decofilm_backend/internals/constants"
	bookingModel "decofilm_backend/internals/features/bookings/model"
	eventModel "decofilm_backend/internals/features/calendar/model"
	customerModel "decofilm_backend/internals/features/customers/model"
	portfolioModel "decofilm_backend/internals/features/portfolio/model"
	projectModel "decofilm_backend/internals/features/projects/model"
	taskModel "decofilm_backend/internals/features/tasks/model"
)

func ptr[T any](v T) *T { return &v }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleBookings(now time.Time) []bookingModel.Booking {
	thisMonth := date(now.Year(), now.Month(), 12)
	return []bookingModel.Booking{
		{
			BookingCustomerName:   "김민수",
			BookingPhone:          "010-1234-5678",
			BookingAddress:        "서울시 강남구 테헤란로 123",
			BookingBuildingType:   constants.BuildingTypeApartment,
			BookingAreaSize:       ptr("32평"),
			BookingConsultDate:    thisMonth,
			BookingConsultTime:    "10:00",
			BookingSpaces:         pq.StringArray{"거실", "주방"},
			BookingBudget:         ptr("300-500만원"),
			BookingStatus:         constants.BookingStatusConfirmed,
			BookingEstimateAmount: ptr(int64(3_500_000)),
			BookingPrivacyConsent: true,
		},
		{
			BookingCustomerName:   "이서연",
			BookingPhone:          "010-9876-5432",
			BookingAddress:        "서울시 송파구 올림픽로 45",
			BookingBuildingType:   constants.BuildingTypeOfficetel,
			BookingConsultDate:    thisMonth.AddDate(0, 0, 3),
			BookingConsultTime:    "14:00",
			BookingSpaces:         pq.StringArray{"현관", "욕실"},
			BookingStatus:         constants.BookingStatusCompleted,
			BookingEstimateAmount: ptr(int64(1_800_000)),
			BookingFinalAmount:    ptr(int64(2_000_000)),
			BookingPaymentStatus:  constants.PaymentStatusCompleted,
			BookingPrivacyConsent: true,
		},
		{
			BookingCustomerName:   "박지훈",
			BookingPhone:          "010-5555-1111",
			BookingAddress:        "경기도 성남시 분당구 판교역로 7",
			BookingBuildingType:   constants.BuildingTypeHouse,
			BookingConsultDate:    thisMonth.AddDate(0, 0, 7),
			BookingConsultTime:    "11:30",
			BookingStatus:         constants.BookingStatusPending,
			BookingPrivacyConsent: true,
		},
	}
}

func sampleCustomers() []customerModel.Customer {
	return []customerModel.Customer{
		{
			CustomerName:       "김민수",
			CustomerPhone:      "010-1234-5678",
			CustomerEmail:      ptr("minsu.kim@example.com"),
			CustomerStatus:     constants.CustomerStatusVIP,
			CustomerTotalSpent: 5_500_000,
			CustomerOrderCount: 2,
			CustomerRating:     5,
			CustomerMemo:       ptr("재시공 문의 이력 있음"),
		},
		{
			CustomerName:   "이서연",
			CustomerPhone:  "010-9876-5432",
			CustomerStatus: constants.CustomerStatusActive,
			CustomerRating: 4,
		},
	}
}

func sampleProjects(now time.Time) []projectModel.Project {
	return []projectModel.Project{
		{
			ProjectCustomerName:       "김민수",
			ProjectPhone:              "010-1234-5678",
			ProjectAddress:            ptr("서울시 강남구 테헤란로 123"),
			ProjectTitle:              "강남 아파트 전체 필름 시공",
			ProjectStatus:             constants.ProjectStatusInProgress,
			ProjectProgressPercentage: 50,
			ProjectStartDate:          ptr(date(now.Year(), now.Month(), 2)),
		},
		{
			ProjectCustomerName:       "이서연",
			ProjectPhone:              "010-9876-5432",
			ProjectAddress:            ptr("서울시 송파구 올림픽로 45"),
			ProjectTitle:              "송파 오피스텔 주방 리폼",
			ProjectStatus:             constants.ProjectStatusCompleted,
			ProjectProgressPercentage: 100,
		},
	}
}

func samplePortfolio() []portfolioModel.PortfolioItem {
	return []portfolioModel.PortfolioItem{
		{
			PortfolioTitle:       "화이트 무광 주방 리폼",
			PortfolioCategory:    "주방",
			PortfolioDescription: ptr("상부장/하부장 화이트 무광 필름 시공"),
			PortfolioImageURL:    "https://cdn.example.com/portfolio/kitchen-white.webp",
			PortfolioTags:        pq.StringArray{"주방", "화이트", "무광"},
			PortfolioLocation:    ptr("서울 강남"),
		},
		{
			PortfolioTitle:    "현관 중문 우드톤 시공",
			PortfolioCategory: "현관",
			PortfolioImageURL: "https://cdn.example.com/portfolio/entrance-wood.webp",
			PortfolioTags:     pq.StringArray{"현관", "우드"},
		},
	}
}

func sampleEvents(now time.Time) []eventModel.Event {
	d := date(now.Year(), now.Month(), 20)
	return []eventModel.Event{
		{
			EventTitle:     "자재 발주 미팅",
			EventType:      constants.EventTypeMeeting,
			EventPriority:  constants.PriorityHigh,
			EventStartDate: d,
			EventStartTime: ptr("09:30"),
			EventEndDate:   d,
			EventEndTime:   ptr("11:00"),
		},
		{
			EventTitle:     "B2B 납품 일정",
			EventType:      constants.EventTypeB2B,
			EventPriority:  constants.PriorityMedium,
			EventStartDate: d.AddDate(0, 0, 2),
			EventEndDate:   d.AddDate(0, 0, 4),
			EventAllDay:    true,
		},
	}
}

func sampleTasks(now time.Time) []taskModel.Task {
	return []taskModel.Task{
		{
			TaskTitle:    "김민수 고객 견적서 발송",
			TaskCategory: ptr("영업"),
			TaskPriority: constants.PriorityUrgent,
			TaskDueDate:  ptr(date(now.Year(), now.Month(), now.Day()).AddDate(0, 0, 1)),
		},
		{
			TaskTitle:    "포트폴리오 사진 업로드",
			TaskCategory: ptr("마케팅"),
			TaskPriority: constants.PriorityLow,
		},
	}
}
