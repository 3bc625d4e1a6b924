package quiz

// CatalogueIDs is the ordered list the daily rotation draws from. The order
// is load-bearing: the date-hash index points into this slice, so persisted
// progress stays valid only if the order never changes.
var CatalogueIDs = []string{
	"toady-001",
	"toady-002",
	"toady-003",
	"toady-004",
	"toady-005",
	"toady-006",
	"toady-007",
}

// DefaultID is used when a chat request carries no quiz id.
const DefaultID = "toady-001"

// Builtin is the shipped catalogue, seeded into the database on boot.
var Builtin = []Quiz{
	{
		ID:       "toady-001",
		Title:    "문 앞의 상자",
		Scenario: "퇴근한 남자는 문 앞에 놓인 택배 상자에서 허연 연기가 새어 나오는 것을 보고 곧장 경찰에 신고했다. 그러나 출동한 경찰은 상자를 열어 보더니 웃으며 돌아갔다. 무슨 일이 있었던 걸까?",
		Checkpoints: []string{
			"상자 안에는 드라이아이스가 들어 있었다",
			"연기처럼 보인 것은 불이 아니라 드라이아이스가 승화하며 생긴 김이었다",
			"남자는 그 김을 화재나 위험물로 착각했다",
			"상자는 이웃이 보낸 냉동식품 택배였다",
		},
		Hints: []string{
			"연기는 났지만 불은 어디에도 없었어요.",
			"상자를 만져 보면 뜨겁기는커녕 아주 차가웠을 거예요.",
			"상자 안에 든 것은 먹을 수 있는 것이었어요.",
		},
		Solution: "상자에는 이웃이 보낸 냉동식품이 드라이아이스와 함께 들어 있었다. 연기처럼 보인 것은 드라이아이스가 승화하며 생긴 김이었고, 남자는 그것을 화재나 폭발물로 착각해 신고한 것이다.",
	},
	{
		ID:       "toady-002",
		Title:    "바다거북 수프",
		Scenario: "한 남자가 바닷가 식당에서 바다거북 수프를 주문해 한 입 먹은 뒤, 계산을 마치고 집으로 돌아가 스스로 목숨을 끊었다. 왜일까?",
		Checkpoints: []string{
			"남자는 과거에 바다에서 조난을 당한 적이 있다",
			"조난 당시 남자는 '바다거북 수프'라며 건네받은 것을 먹고 살아남았다",
			"식당에서 먹은 진짜 바다거북 수프는 그때의 맛과 달랐다",
			"남자는 그때 먹은 것이 죽은 동료의 살점이었음을 깨달았다",
		},
		Hints: []string{
			"남자는 바다거북 수프를 처음 먹는 것이 아니라고 생각했어요.",
			"오래 전 바다에서 아주 힘든 일을 겪었어요.",
			"문제는 오늘의 수프가 아니라 '그때의 수프'예요.",
		},
		Solution: "남자는 과거 조난 중 동료가 건넨 '바다거북 수프'를 먹고 살아남았다. 식당에서 진짜 바다거북 수프를 먹어 보니 맛이 전혀 달랐고, 그때 먹은 것이 죽은 동료의 살점이었음을 깨달아 죄책감에 목숨을 끊은 것이다.",
	},
	{
		ID:       "toady-003",
		Title:    "10층의 남자",
		Scenario: "한 남자는 매일 아침 엘리베이터를 타고 1층까지 내려가 출근한다. 그런데 퇴근길에는 7층에서 내려 나머지 세 층을 걸어 올라간다. 비가 오는 날만은 10층까지 엘리베이터를 탄다. 왜일까?",
		Checkpoints: []string{
			"남자는 키가 매우 작다",
			"남자의 손은 7층 버튼까지밖에 닿지 않는다",
			"비 오는 날에는 우산으로 10층 버튼을 누를 수 있다",
		},
		Hints: []string{
			"엘리베이터가 고장난 것은 아니에요.",
			"운동을 하려는 것도 아니에요.",
			"비 오는 날 그가 손에 들고 있는 물건을 떠올려 보세요.",
		},
		Solution: "남자는 키가 매우 작아 엘리베이터의 7층 버튼까지밖에 손이 닿지 않는다. 비 오는 날에는 들고 있던 우산으로 10층 버튼을 누를 수 있어 집까지 올라갈 수 있는 것이다.",
	},
	{
		ID:       "toady-004",
		Title:    "사막 한가운데의 남자",
		Scenario: "사막 한가운데에서 한 남자가 숨진 채 발견되었다. 주변에는 발자국 하나 없고, 남자의 손에는 부러진 성냥개비 하나가 쥐여 있었다. 무슨 일이 있었던 걸까?",
		Checkpoints: []string{
			"남자는 일행과 함께 열기구를 타고 있었다",
			"열기구가 추락할 위기에 놓여 무게를 줄여야 했다",
			"누가 뛰어내릴지 성냥개비 제비뽑기로 정했다",
			"부러진 성냥을 뽑은 남자가 뛰어내렸다",
		},
		Hints: []string{
			"남자는 걸어서 그곳까지 간 것이 아니에요.",
			"남자는 혼자가 아니었어요.",
			"성냥개비는 불을 붙이기 위한 것이 아니었어요.",
		},
		Solution: "남자는 일행과 함께 열기구를 타고 사막을 건너고 있었다. 열기구가 추락할 위기에 놓이자 무게를 줄이기 위해 성냥개비 제비뽑기를 했고, 부러진 성냥을 뽑은 남자가 뛰어내려 숨진 것이다.",
	},
	{
		ID:       "toady-005",
		Title:    "음악이 멈추던 밤",
		Scenario: "라디오에서 흘러나오던 음악이 갑자기 멈추자, 한 남자가 그 자리에서 목숨을 잃었다. 무슨 일이 있었던 걸까?",
		Checkpoints: []string{
			"남자는 눈을 가린 채 외줄을 타는 곡예사였다",
			"음악은 줄 위에서 남은 거리를 가늠하는 신호였다",
			"음악이 예정보다 일찍 멈추자 남자는 줄이 끝났다고 착각했다",
			"남자는 줄에서 발을 내디뎌 추락했다",
		},
		Hints: []string{
			"남자는 음악을 들으며 '일'을 하고 있었어요.",
			"남자는 앞을 볼 수 없는 상태였어요.",
			"남자에게 음악은 시계와 같은 역할이었어요.",
		},
		Solution: "남자는 눈을 가린 채 외줄을 타는 곡예사였다. 음악이 끝나는 순간이 줄의 끝에 도착하는 신호였는데, 방송 사고로 음악이 일찍 멈추자 줄이 끝났다고 착각하고 발을 내디뎌 추락한 것이다.",
	},
	{
		ID:       "toady-006",
		Title:    "물 한 잔과 총",
		Scenario: "한 남자가 바에 들어가 바텐더에게 물 한 잔을 달라고 했다. 바텐더는 갑자기 총을 꺼내 남자를 겨눴다. 남자는 \"고맙습니다\"라고 말하고는 그대로 바를 나갔다. 왜일까?",
		Checkpoints: []string{
			"남자는 딸꾹질을 멈추고 싶어 물을 달라고 했다",
			"바텐더는 놀라게 하면 딸꾹질이 멈춘다는 것을 알고 있었다",
			"총을 겨눈 것은 남자를 놀라게 하기 위해서였다",
			"딸꾹질이 멈췄기 때문에 남자는 고마워했다",
		},
		Hints: []string{
			"남자가 정말 원한 것은 물 자체가 아니었어요.",
			"바텐더는 남자를 해칠 생각이 전혀 없었어요.",
			"깜짝 놀라면 사라지는 것이 있죠.",
		},
		Solution: "남자는 딸꾹질을 멈추려고 물을 달라고 했다. 바텐더는 깜짝 놀라면 딸꾹질이 멎는다는 것을 알고 일부러 총을 겨눠 남자를 놀라게 했고, 딸꾹질이 멈춘 남자는 고마워하며 바를 나간 것이다.",
	},
	{
		ID:       "toady-007",
		Title:    "잠긴 방의 웅덩이",
		Scenario: "안에서 잠긴 창고 안에서 한 남자가 천장에 목을 맨 채 발견되었다. 주변에는 딛고 올라설 만한 물건이 하나도 없었고, 바닥에는 물웅덩이만 남아 있었다. 어떻게 된 일일까?",
		Checkpoints: []string{
			"남자는 커다란 얼음 덩어리를 딛고 올라섰다",
			"시간이 지나 얼음이 녹아 물웅덩이가 되었다",
			"남자는 스스로 목숨을 끊었다",
		},
		Hints: []string{
			"처음부터 웅덩이가 있었던 것은 아니에요.",
			"남자가 딛고 선 것은 시간이 지나면 사라지는 것이었어요.",
			"창고는 차갑지 않아도 괜찮아요. 시간이 해결해 주니까요.",
		},
		Solution: "남자는 커다란 얼음 덩어리를 딛고 올라가 목을 맸다. 시간이 지나 얼음이 녹아 버렸기 때문에 발판은 사라지고 바닥에는 물웅덩이만 남은 것이다.",
	},
}
