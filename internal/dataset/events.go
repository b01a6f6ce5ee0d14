package dataset

import (
	"time"

	"github.com/twogather/twogather/internal/event"
)

const day = 24 * time.Hour

type eventSeed struct {
	id          string
	title       string
	description string
	category    event.Category
	status      event.Status
	hostID      string
	dayOffset   int
	start, end  string
	location    string
	max, cur    int
	cost        int64
	token       string
	created     time.Duration
	updated     time.Duration
}

var eventSeeds = []eventSeed{
	{"event-001", "주말 수영 모임", "매주 토요일 오전 수영 모임입니다. 초급자부터 상급자까지 환영합니다. 자유형, 평영, 배영 등 다양한 영법을 함께 연습해요.",
		event.CategorySwimming, event.StatusUpcoming, "user-003", 2, "09:00", "11:00", "강남 수영장 (서울시 강남구 테헤란로 123)", 10, 7, 15000, "swim-001-abc123", -10 * day, -1 * day},
	{"event-002", "헬스 PT 그룹 세션", "전문 트레이너와 함께하는 그룹 PT 세션입니다. 웨이트 트레이닝 중심으로 진행되며, 개인별 맞춤 지도가 포함됩니다.",
		event.CategoryFitness, event.StatusOngoing, "user-004", 0, "18:00", "20:00", "서울 휘트니스 센터 (마포구 양화로 45)", 8, 8, 35000, "fitness-002-def456", -15 * day, -2 * time.Hour},
	{"event-003", "친구들과 보드게임 카페", "친목 도모를 위한 보드게임 카페 모임입니다. 다양한 보드게임을 즐기며 즐거운 시간을 보내요. 초보자도 환영!",
		event.CategorySocial, event.StatusCompleted, "user-005", -3, "14:00", "18:00", "홍대 보드게임 카페 (서대문구 연세로 12)", 6, 6, 20000, "social-003-ghi789", -20 * day, -3 * day},
	{"event-004", "축구 풋살 게임", "주말 아침 풋살 게임입니다. 5:5 경기로 진행되며, 실력 무관 누구나 참여 가능합니다. 유니폼은 제공됩니다.",
		event.CategorySports, event.StatusUpcoming, "user-006", 5, "08:00", "10:00", "잠실 풋살장 (송파구 올림픽로 240)", 10, 9, 12000, "sports-004-jkl012", -8 * day, -2 * day},
	{"event-005", "영어 회화 스터디", "매주 수요일 저녁 영어 회화 스터디입니다. 일상 주제로 자유롭게 대화하며 실력을 향상시켜요. 원어민 진행자 포함.",
		event.CategoryStudy, event.StatusUpcoming, "user-007", 1, "19:00", "21:00", "강남 스터디 카페 (강남구 역삼로 78)", 12, 8, 10000, "study-005-mno345", -12 * day, -1 * day},
	{"event-006", "수영 자유형 집중 연습", "자유형 영법 개선을 위한 집중 연습 세션입니다. 영상 촬영 및 피드백 제공. 중급 이상 추천.",
		event.CategorySwimming, event.StatusUpcoming, "user-003", 9, "10:00", "12:00", "올림픽 수영장 (송파구 올림픽로 424)", 8, 5, 25000, "swim-006-pqr678", -5 * day, 0},
	{"event-007", "저녁 요가 클래스", "하루의 피로를 풀어주는 저녁 요가 클래스입니다. 초급자 환영, 요가 매트는 제공됩니다.",
		event.CategoryFitness, event.StatusUpcoming, "user-008", 3, "20:00", "21:30", "홍대 요가 스튜디오 (마포구 홍익로 92)", 15, 12, 18000, "fitness-007-stu901", -7 * day, -1 * day},
	{"event-008", "한강 피크닉 모임", "날씨 좋은 날 한강에서 피크닉 모임입니다. 돗자리, 간식, 음료 준비해서 함께 즐거운 시간 보내요!",
		event.CategorySocial, event.StatusCompleted, "user-009", -7, "15:00", "19:00", "반포 한강공원 (서초구 신반포로 고수부지)", 20, 18, 15000, "social-008-vwx234", -25 * day, -7 * day},
	{"event-009", "테니스 레슨 (중급)", "중급자를 위한 테니스 레슨입니다. 포핸드, 백핸드, 서브 기술 향상에 집중합니다. 라켓은 개인 지참.",
		event.CategorySports, event.StatusUpcoming, "user-010", 7, "10:00", "12:00", "양재 테니스장 (서초구 매헌로 99)", 6, 4, 40000, "sports-009-yza567", -6 * day, -2 * day},
	{"event-010", "코딩 스터디 - 알고리즘", "알고리즘 문제 풀이 스터디입니다. 매주 5문제씩 풀고 리뷰합니다. 백준, 프로그래머스 중심.",
		event.CategoryStudy, event.StatusOngoing, "user-004", 0, "14:00", "17:00", "신촌 스터디 카페 (서대문구 신촌로 56)", 8, 7, 8000, "study-010-bcd890", -18 * day, -1 * time.Hour},
	{"event-011", "브런치 모임", "주말 브런치 카페 모임입니다. 맛있는 음식과 함께 자유로운 대화를 나눠요. 신메뉴 체험!",
		event.CategoryDining, event.StatusUpcoming, "user-005", 4, "11:00", "13:00", "이태원 브런치 카페 (용산구 이태원로 234)", 8, 6, 25000, "dining-011-efg123", -4 * day, -1 * day},
	{"event-012", "아침 크로스핏", "아침 일찍 시작하는 크로스핏 세션입니다. 고강도 운동으로 하루를 시작해요. 초보자 변형 동작 제공.",
		event.CategoryFitness, event.StatusCompleted, "user-008", -2, "06:00", "07:00", "강남 크로스핏 박스 (강남구 논현로 188)", 12, 10, 20000, "fitness-012-hij456", -14 * day, -2 * day},
	{"event-013", "등산 모임 - 북한산", "북한산 백운대 코스 등산 모임입니다. 중급 난이도, 약 4시간 소요. 간식과 물은 개인 준비.",
		event.CategorySports, event.StatusUpcoming, "user-006", 6, "08:00", "14:00", "북한산 우이동 입구 (강북구 우이동)", 15, 11, 5000, "sports-013-klm789", -9 * day, -3 * day},
	{"event-014", "재즈 바 모임", "재즈 라이브 공연을 감상하는 모임입니다. 좋은 음악과 분위기 속에서 즐거운 시간을 보내요.",
		event.CategorySocial, event.StatusUpcoming, "user-007", 8, "20:00", "23:00", "이태원 재즈 바 (용산구 이태원로27가길 35)", 10, 7, 30000, "social-014-nop012", -11 * day, -4 * day},
	{"event-015", "IELTS 스피킹 준비반", "IELTS 스피킹 시험 준비 스터디입니다. 파트별 전략 공유 및 실전 모의고사 진행. 목표 점수 7.0+",
		event.CategoryStudy, event.StatusUpcoming, "user-009", 10, "18:30", "20:30", "강남 어학원 (강남구 테헤란로 152)", 10, 8, 15000, "study-015-qrs345", -13 * day, -5 * day},
	{"event-016", "수영 접영 마스터 클래스", "접영(버터플라이) 전문 클래스입니다. 영법의 꽃 접영을 정복해봐요! 상급자 대상.",
		event.CategorySwimming, event.StatusCancelled, "user-003", 1, "07:00", "08:30", "올림픽 수영장 (송파구 올림픽로 424)", 6, 3, 35000, "swim-016-tuv678", -16 * day, 0},
	{"event-017", "삼겹살 파티", "다 같이 모여 삼겹살 파티! 무한리필 고기와 함께 즐거운 저녁 시간을 보내요. 회식 분위기.",
		event.CategoryDining, event.StatusCompleted, "user-010", -5, "18:00", "21:00", "강남 고기집 (강남구 강남대로 364)", 12, 12, 22000, "dining-017-wxy901", -22 * day, -5 * day},
	{"event-018", "필라테스 입문 클래스", "처음 시작하는 분들을 위한 필라테스 기초 클래스입니다. 코어 강화와 자세 교정에 집중합니다.",
		event.CategoryFitness, event.StatusUpcoming, "user-005", 11, "10:00", "11:30", "서초 필라테스 스튜디오 (서초구 서초대로 301)", 10, 6, 25000, "fitness-018-zab234", -3 * day, 0},
	{"event-019", "영화 관람 모임", "최신 개봉작 단체 관람 모임입니다. 영화 후 카페에서 리뷰 및 토론 시간 포함. 장르: SF 액션.",
		event.CategorySocial, event.StatusUpcoming, "user-004", 12, "19:30", "23:00", "CGV 강변 (광진구 강변역로 62)", 15, 13, 18000, "social-019-cde567", -8 * day, -2 * day},
	{"event-020", "배드민턴 동호회", "매주 목요일 저녁 배드민턴 동호회입니다. 복식 게임 위주로 진행, 라켓과 셔틀콕은 제공됩니다.",
		event.CategorySports, event.StatusUpcoming, "user-006", 13, "19:00", "21:00", "서초 체육관 (서초구 반포대로 58)", 16, 14, 10000, "sports-020-fgh890", -17 * day, -6 * day},
}

// Events returns the fixture catalog with dates relative to now.
// Event dates are calendar days in now's location.
func Events(now time.Time) []event.Event {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	out := make([]event.Event, 0, len(eventSeeds))
	for _, s := range eventSeeds {
		out = append(out, event.Event{
			ID:                  s.id,
			Title:               s.title,
			Description:         s.description,
			Category:            s.category,
			Status:              s.status,
			HostID:              s.hostID,
			Date:                today.AddDate(0, 0, s.dayOffset),
			StartTime:           s.start,
			EndTime:             s.end,
			Location:            s.location,
			MaxParticipants:     s.max,
			CurrentParticipants: s.cur,
			CostPerPerson:       s.cost,
			ShareLinkToken:      s.token,
			CreatedAt:           now.Add(s.created),
			UpdatedAt:           now.Add(s.updated),
		})
	}
	return out
}
