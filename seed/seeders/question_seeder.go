package seeders

import (
	"encoding/json"
	"log"
	"time"

	"github.com/kurs-wjo/wjo_api/model"
	"gorm.io/gorm"
)

// QuestionSeeder handles seeding the certification question bank
type QuestionSeeder struct {
	db *gorm.DB
}

// NewQuestionSeeder creates a new question seeder
func NewQuestionSeeder(db *gorm.DB) *QuestionSeeder {
	return &QuestionSeeder{db: db}
}

// SeedQuestions seeds the database with the forklift certification bank
func (s *QuestionSeeder) SeedQuestions() error {
	questions := s.getQuestionBank()

	for _, question := range questions {
		var existing model.Question
		if err := s.db.Where("id = ?", question.ID).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := s.db.Create(&question).Error; err != nil {
					log.Printf("Error creating question %s: %v", question.ID, err)
					return err
				}
				log.Printf("Created question: %s", question.ID)
			} else {
				log.Printf("Error checking question %s: %v", question.ID, err)
				return err
			}
		} else {
			log.Printf("Question %s already exists, skipping", question.ID)
		}
	}

	log.Println("Question seeding completed successfully")
	return nil
}

func options(m map[string]string) json.RawMessage {
	data, _ := json.Marshal(m)
	return data
}

// getQuestionBank returns the starter UDT exam bank, grouped by category.
func (s *QuestionSeeder) getQuestionBank() []model.Question {
	now := time.Now()

	questions := []model.Question{
		// Prawo i Dozór Techniczny
		{
			ID:   "q_prawo_001",
			Text: "Kto sprawuje dozór techniczny nad wózkami jezdniowymi podnośnikowymi?",
			Options: options(map[string]string{
				"A": "Państwowa Inspekcja Pracy",
				"B": "Urząd Dozoru Technicznego",
				"C": "Inspekcja Transportu Drogowego",
				"D": "Sanepid",
			}),
			CorrectOption: "B",
			Explanation:   "Wózki jezdniowe podnośnikowe z mechanicznym napędem podnoszenia podlegają dozorowi technicznemu UDT.",
			Hint:          "Skrót tej instytucji to UDT.",
			Category:      "Prawo i Dozór Techniczny",
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:   "q_prawo_002",
			Text: "Jak długo ważne jest zaświadczenie kwalifikacyjne do obsługi wózków jezdniowych podnośnikowych z wysięgnikiem?",
			Options: options(map[string]string{
				"A": "Bezterminowo",
				"B": "10 lat",
				"C": "5 lat",
				"D": "1 rok",
			}),
			CorrectOption: "C",
			Explanation:   "Zaświadczenia kwalifikacyjne dla wózków z wysięgnikiem wydawane są na 5 lat.",
			Category:      "Prawo i Dozór Techniczny",
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:   "q_prawo_003",
			Text: "Kiedy wózek jezdniowy podnośnikowy może być eksploatowany?",
			Options: options(map[string]string{
				"A": "Gdy posiada aktualną decyzję UDT zezwalającą na eksploatację",
				"B": "Gdy został zakupiony u autoryzowanego dealera",
				"C": "Gdy operator ma ukończone 18 lat",
				"D": "Zawsze, jeśli jest sprawny technicznie",
			}),
			CorrectOption: "A",
			Explanation:   "Warunkiem eksploatacji urządzenia podlegającego dozorowi jest ważna decyzja UDT.",
			Category:      "Prawo i Dozór Techniczny",
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:   "q_prawo_004",
			Text: "Co powinien zrobić operator po zauważeniu usterki zagrażającej bezpieczeństwu?",
			Options: options(map[string]string{
				"A": "Dokończyć zmianę i zgłosić usterkę następnego dnia",
				"B": "Natychmiast przerwać pracę i powiadomić przełożonego",
				"C": "Samodzielnie naprawić usterkę",
				"D": "Obniżyć prędkość jazdy i kontynuować pracę",
			}),
			CorrectOption: "B",
			Explanation:   "Usterkę zagrażającą bezpieczeństwu zgłasza się niezwłocznie, a wózek wyłącza z eksploatacji.",
			Category:      "Prawo i Dozór Techniczny",
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:   "q_prawo_005",
			Text: "Kto może dokonywać napraw i konserwacji wózka jezdniowego podnośnikowego?",
			Options: options(map[string]string{
				"A": "Każdy operator z zaświadczeniem kwalifikacyjnym",
				"B": "Dowolny pracownik działu technicznego",
				"C": "Osoba posiadająca odpowiednie uprawnienia konserwatora",
				"D": "Wyłącznie producent wózka",
			}),
			CorrectOption: "C",
			Explanation:   "Konserwację urządzeń dozorowych prowadzi konserwator z uprawnieniami wydanymi przez UDT.",
			Category:      "Prawo i Dozór Techniczny",
			CreatedAt:     now,
			UpdatedAt:     now,
		},

		// Bezpieczeństwo i Organizacja Pracy
		{
			ID:   "q_bhp_001",
			Text: "Co operator musi wykonać przed rozpoczęciem pracy wózkiem?",
			Options: options(map[string]string{
				"A": "Obsługę codzienną (OC) wózka",
				"B": "Przegląd konserwacyjny",
				"C": "Badanie doraźne UDT",
				"D": "Wymianę oleju hydraulicznego",
			}),
			CorrectOption: "A",
			Explanation:   "Przed rozpoczęciem pracy operator wykonuje obsługę codzienną: sprawdzenie stanu technicznego, hamulców, sygnałów i osprzętu.",
			Hint:          "Wykonuje się ją na początku każdej zmiany.",
			Category:      "Bezpieczeństwo i Organizacja Pracy",
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:   "q_bhp_002",
			Text: "Jak należy pozostawić wózek po zakończeniu pracy?",
			Options: options(map[string]string{
				"A": "Z podniesionymi widłami, by nie blokowały przejścia",
				"B": "Z opuszczonymi widłami, zaciągniętym hamulcem i wyjętym kluczykiem",
				"C": "Z włączonym silnikiem, by ułatwić kolejny rozruch",
				"D": "W dowolnym miejscu hali",
			}),
			CorrectOption: "B",
			Explanation:   "Wózek parkuje się z opuszczonym osprzętem, zaciągniętym hamulcem postojowym i zabezpieczony przed uruchomieniem przez osoby postronne.",
			Category:      "Bezpieczeństwo i Organizacja Pracy",
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:   "q_bhp_003",
			Text: "Czy wolno przewozić osoby na widłach wózka?",
			Options: options(map[string]string{
				"A": "Tak, na krótkich odcinkach",
				"B": "Tak, jeśli osoba trzyma się karetki",
				"C": "Nie, nigdy",
				"D": "Tak, za zgodą przełożonego",
			}),
			CorrectOption: "C",
			Explanation:   "Przewożenie i podnoszenie osób na widłach lub ładunku jest bezwzględnie zabronione.",
			Category:      "Bezpieczeństwo i Organizacja Pracy",
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:   "q_bhp_004",
			Text: "Jak należy jechać wózkiem z ładunkiem ograniczającym widoczność?",
			Options: options(map[string]string{
				"A": "Szybciej, aby skrócić czas przejazdu",
				"B": "Tyłem, z zachowaniem ostrożności",
				"C": "Przodem, wychylając się z kabiny",
				"D": "Z widłami uniesionymi na wysokość oczu",
			}),
			CorrectOption: "B",
			Explanation:   "Gdy ładunek zasłania widoczność, jedzie się tyłem do kierunku jazdy albo korzysta z pomocy sygnalisty.",
			Category:      "Bezpieczeństwo i Organizacja Pracy",
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:   "q_bhp_005",
			Text: "Na jakiej wysokości należy przewozić ładunek podczas jazdy?",
			Options: options(map[string]string{
				"A": "Około 20-30 cm nad podłożem",
				"B": "Na wysokości 1,5 m",
				"C": "Na maksymalnej wysokości podnoszenia",
				"D": "Wysokość nie ma znaczenia",
			}),
			CorrectOption: "A",
			Explanation:   "Ładunek przewozi się nisko nad podłożem z masztem pochylonym do tyłu; wysoko uniesiony ładunek grozi utratą stateczności.",
			Category:      "Bezpieczeństwo i Organizacja Pracy",
			CreatedAt:     now,
			UpdatedAt:     now,
		},

		// Budowa i Parametry Techniczne
		{
			ID:   "q_budowa_001",
			Text: "Co to jest udźwig nominalny wózka?",
			Options: options(map[string]string{
				"A": "Maksymalna masa ładunku przy określonym środku ciężkości",
				"B": "Masa własna wózka",
				"C": "Maksymalna wysokość podnoszenia",
				"D": "Suma masy wózka i ładunku",
			}),
			CorrectOption: "A",
			Explanation:   "Udźwig nominalny to największa dopuszczalna masa ładunku przy nominalnej odległości środka ciężkości od czoła wideł.",
			Hint:          "Podaje się go razem z odległością środka ciężkości.",
			Category:      "Budowa i Parametry Techniczne",
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:   "q_budowa_002",
			Text: "Jaką funkcję pełni krata ochronna nad operatorem (daszek ochronny)?",
			Options: options(map[string]string{
				"A": "Usztywnia konstrukcję masztu",
				"B": "Chroni operatora przed spadającymi przedmiotami",
				"C": "Służy do mocowania ładunków",
				"D": "Poprawia widoczność",
			}),
			CorrectOption: "B",
			Explanation:   "Daszek ochronny chroni operatora przed spadającymi elementami ładunku.",
			Category:      "Budowa i Parametry Techniczne",
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:   "q_budowa_003",
			Text: "Który element przenosi ruch podnoszenia na widły?",
			Options: options(map[string]string{
				"A": "Przeciwwaga",
				"B": "Most napędowy",
				"C": "Karetka z łańcuchami nośnymi",
				"D": "Oś skrętna",
			}),
			CorrectOption: "C",
			Explanation:   "Widły zawieszone są na karetce, którą po maszcie podnoszą łańcuchy nośne napędzane siłownikiem hydraulicznym.",
			Category:      "Budowa i Parametry Techniczne",
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:   "q_budowa_004",
			Text: "Do czego służy przeciwwaga w wózku czołowym?",
			Options: options(map[string]string{
				"A": "Zwiększa przyczepność kół przednich",
				"B": "Równoważy moment wywracający od ładunku",
				"C": "Obniża zużycie paliwa",
				"D": "Tłumi drgania masztu",
			}),
			CorrectOption: "B",
			Explanation:   "Przeciwwaga równoważy moment od ładunku podnoszonego przed osią przednią, zapewniając stateczność wzdłużną.",
			Category:      "Budowa i Parametry Techniczne",
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:   "q_budowa_005",
			Text: "Co oznacza pochylenie masztu do tyłu podczas transportu ładunku?",
			Options: options(map[string]string{
				"A": "Zmniejszenie prędkości jazdy",
				"B": "Zwiększenie wysokości podnoszenia",
				"C": "Dociążenie osi skrętnej",
				"D": "Stabilniejsze ułożenie ładunku na widłach",
			}),
			CorrectOption: "D",
			Explanation:   "Pochylenie masztu do tyłu dociska ładunek do pleców wideł i zmniejsza ryzyko jego zsunięcia.",
			Category:      "Budowa i Parametry Techniczne",
			CreatedAt:     now,
			UpdatedAt:     now,
		},

		// Diagramy Udźwigu i Ładunki
		{
			ID:   "q_udzwig_001",
			Text: "Co przedstawia diagram udźwigu wózka?",
			Options: options(map[string]string{
				"A": "Zależność udźwigu od wysokości podnoszenia i położenia środka ciężkości",
				"B": "Zużycie paliwa w funkcji prędkości",
				"C": "Harmonogram przeglądów konserwacyjnych",
				"D": "Schemat instalacji hydraulicznej",
			}),
			CorrectOption: "A",
			Explanation:   "Diagram udźwigu pokazuje dopuszczalną masę ładunku dla danej wysokości podnoszenia i odległości środka ciężkości.",
			Category:      "Diagramy Udźwigu i Ładunki",
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:   "q_udzwig_002",
			Text: "Jak zmienia się dopuszczalny udźwig wraz ze wzrostem odległości środka ciężkości ładunku od czoła wideł?",
			Options: options(map[string]string{
				"A": "Rośnie",
				"B": "Maleje",
				"C": "Nie zmienia się",
				"D": "Najpierw rośnie, potem maleje",
			}),
			CorrectOption: "B",
			Explanation:   "Im dalej środek ciężkości od czoła wideł, tym większy moment wywracający i mniejszy dopuszczalny udźwig.",
			Hint:          "Pomyśl o dźwigni.",
			Category:      "Diagramy Udźwigu i Ładunki",
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:   "q_udzwig_003",
			Text: "Jak należy podjąć ładunek na paletach?",
			Options: options(map[string]string{
				"A": "Jedną widłą, aby przyspieszyć pracę",
				"B": "Widłami rozstawionymi możliwie szeroko, wsuniętymi na pełną głębokość",
				"C": "Samymi końcówkami wideł",
				"D": "Z masztem pochylonym maksymalnie do przodu",
			}),
			CorrectOption: "B",
			Explanation:   "Widły rozstawia się szeroko i wsuwa pod ładunek na całą długość, a maszt pochyla do tyłu przed podniesieniem.",
			Category:      "Diagramy Udźwigu i Ładunki",
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:   "q_udzwig_004",
			Text: "Co grozi przy podnoszeniu ładunku przekraczającego udźwig wynikający z diagramu?",
			Options: options(map[string]string{
				"A": "Jedynie szybsze zużycie opon",
				"B": "Nic, wózki mają duży zapas bezpieczeństwa",
				"C": "Utrata stateczności i wywrócenie wózka",
				"D": "Automatyczne wyłączenie silnika",
			}),
			CorrectOption: "C",
			Explanation:   "Przeciążenie wózka może spowodować uniesienie osi skrętnej i wywrócenie wózka do przodu.",
			Category:      "Diagramy Udźwigu i Ładunki",
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:   "q_udzwig_005",
			Text: "Gdzie znajduje się trójkąt stateczności wózka czołowego?",
			Options: options(map[string]string{
				"A": "Między punktami podparcia kół przednich a środkiem osi skrętnej",
				"B": "Między widłami a przeciwwagą",
				"C": "Wokół środka ciężkości ładunku",
				"D": "Pod kabiną operatora",
			}),
			CorrectOption: "A",
			Explanation:   "Stateczność wózka opisuje trójkąt rozpięty między kołami przednimi i punktem wahliwego zawieszenia osi skrętnej.",
			Category:      "Diagramy Udźwigu i Ładunki",
			CreatedAt:     now,
			UpdatedAt:     now,
		},

		// Napęd i Zasilanie
		{
			ID:   "q_naped_001",
			Text: "Gdzie można bezpiecznie ładować baterie trakcyjne wózków elektrycznych?",
			Options: options(map[string]string{
				"A": "W dowolnym miejscu hali produkcyjnej",
				"B": "W wyznaczonej, wentylowanej ładowalni",
				"C": "Na zewnątrz, niezależnie od pogody",
				"D": "W pobliżu stanowisk spawalniczych",
			}),
			CorrectOption: "B",
			Explanation:   "Podczas ładowania baterii wydziela się wodór; ładowanie prowadzi się w wentylowanych, wyznaczonych pomieszczeniach z dala od źródeł ognia.",
			Category:      "Napęd i Zasilanie",
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:   "q_naped_002",
			Text: "Dlaczego wózków spalinowych z silnikiem diesla nie wolno eksploatować w małych, zamkniętych pomieszczeniach?",
			Options: options(map[string]string{
				"A": "Ze względu na emisję spalin i ryzyko zatrucia",
				"B": "Ponieważ silnik przegrzewa się w halach",
				"C": "Ze względu na zbyt duży promień skrętu",
				"D": "Ponieważ hałas uszkadza konstrukcję budynku",
			}),
			CorrectOption: "A",
			Explanation:   "Spaliny zawierają tlenek węgla; w pomieszczeniach zamkniętych stosuje się wózki elektryczne lub zapewnia skuteczną wentylację.",
			Category:      "Napęd i Zasilanie",
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:   "q_naped_003",
			Text: "Jak należy postępować z butlą gazową LPG w wózku?",
			Options: options(map[string]string{
				"A": "Wymieniać przy pracującym silniku",
				"B": "Przechowywać zapasowe butle w kabinie",
				"C": "Wymieniać przy wyłączonym silniku, z dala od źródeł ognia",
				"D": "Ogrzewać zimą promiennikiem",
			}),
			CorrectOption: "C",
			Explanation:   "Butlę wymienia się przy wyłączonym silniku i zamkniętym zaworze, z dala od otwartego ognia.",
			Category:      "Napęd i Zasilanie",
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:   "q_naped_004",
			Text: "Co należy sprawdzić w układzie hydraulicznym podczas obsługi codziennej?",
			Options: options(map[string]string{
				"A": "Kolor oleju w siłownikach",
				"B": "Poziom oleju i szczelność przewodów",
				"C": "Temperaturę pompy po 8 godzinach pracy",
				"D": "Ciśnienie w oponach",
			}),
			CorrectOption: "B",
			Explanation:   "W ramach OC kontroluje się poziom oleju hydraulicznego oraz wycieki z przewodów i siłowników.",
			Category:      "Napęd i Zasilanie",
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:   "q_naped_005",
			Text: "Czym grozi rozłączanie wtyczki baterii trakcyjnej pod obciążeniem?",
			Options: options(map[string]string{
				"A": "Niczym, wtyczki są do tego przystosowane",
				"B": "Rozładowaniem baterii",
				"C": "Powstaniem łuku elektrycznego i uszkodzeniem styków",
				"D": "Zablokowaniem hamulca postojowego",
			}),
			CorrectOption: "C",
			Explanation:   "Rozłączanie złącza pod obciążeniem powoduje łuk elektryczny; przed rozłączeniem wyłącza się odbiorniki.",
			Category:      "Napęd i Zasilanie",
			CreatedAt:     now,
			UpdatedAt:     now,
		},

		// Wyposażenie i Kontrolki
		{
			ID:   "q_kontrolki_001",
			Text: "Co oznacza świecąca się kontrolka ciśnienia oleju silnikowego podczas pracy?",
			Options: options(map[string]string{
				"A": "Prawidłowe smarowanie silnika",
				"B": "Zbyt niskie ciśnienie oleju, należy wyłączyć silnik",
				"C": "Konieczność uzupełnienia paliwa",
				"D": "Przegrzanie układu hydraulicznego",
			}),
			CorrectOption: "B",
			Explanation:   "Kontrolka ciśnienia oleju zapalona podczas pracy oznacza brak smarowania; dalsza praca uszkodzi silnik.",
			Category:      "Wyposażenie i Kontrolki",
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:   "q_kontrolki_002",
			Text: "Do czego służy wyłącznik awaryjny (grzybek) w wózku elektrycznym?",
			Options: options(map[string]string{
				"A": "Do natychmiastowego odcięcia zasilania w sytuacji zagrożenia",
				"B": "Do włączania świateł awaryjnych",
				"C": "Do zwalniania hamulca postojowego",
				"D": "Do przełączania biegów",
			}),
			CorrectOption: "A",
			Explanation:   "Wyłącznik awaryjny odcina zasilanie całego wózka; jego działanie sprawdza się w obsłudze codziennej.",
			Category:      "Wyposażenie i Kontrolki",
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:   "q_kontrolki_003",
			Text: "Kiedy operator powinien używać sygnału dźwiękowego?",
			Options: options(map[string]string{
				"A": "Tylko w sytuacjach awaryjnych",
				"B": "Przy dojeżdżaniu do skrzyżowań ciągów i miejsc o ograniczonej widoczności",
				"C": "Podczas całej jazdy",
				"D": "Wyłącznie na zewnątrz hali",
			}),
			CorrectOption: "B",
			Explanation:   "Sygnałem dźwiękowym ostrzega się pieszych przy przejściach, skrzyżowaniach i wyjazdach z pomieszczeń.",
			Category:      "Wyposażenie i Kontrolki",
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:   "q_kontrolki_004",
			Text: "Jakie elementy obejmuje sprawdzenie układu hamulcowego przed pracą?",
			Options: options(map[string]string{
				"A": "Tylko hamulec postojowy",
				"B": "Tylko hamulec zasadniczy",
				"C": "Hamulec zasadniczy i postojowy próbą działania",
				"D": "Poziom płynu chłodniczego",
			}),
			CorrectOption: "C",
			Explanation:   "Przed pracą wykonuje się próbę hamulca zasadniczego i postojowego przy małej prędkości.",
			Category:      "Wyposażenie i Kontrolki",
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:   "q_kontrolki_005",
			Text: "Co oznacza trwale świecąca kontrolka temperatury płynu chłodzącego?",
			Options: options(map[string]string{
				"A": "Silnik osiągnął temperaturę roboczą",
				"B": "Przegrzanie silnika, należy przerwać pracę",
				"C": "Zbyt niską temperaturę otoczenia",
				"D": "Awarię alternatora",
			}),
			CorrectOption: "B",
			Explanation:   "Kontrolka temperatury sygnalizuje przegrzanie; pracę przerywa się do czasu ustalenia przyczyny.",
			Category:      "Wyposażenie i Kontrolki",
			CreatedAt:     now,
			UpdatedAt:     now,
		},
	}

	return questions
}
