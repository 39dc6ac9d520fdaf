package models

// Outcome - результат прохождения цепочки проверок движка уведомлений.
// Непройденная проверка - это не ошибка, а обычный исход оценки.
type Outcome string

const (
	OutcomeNotified       Outcome = "notified"        // уведомление отправлено и подтверждено
	OutcomeExcluded       Outcome = "excluded"        // координата внутри зоны исключения
	OutcomeNoCandidate    Outcome = "no_candidate"    // поиск мест не вернул подходящего заведения
	OutcomeLookupFailed   Outcome = "lookup_failed"   // сервис поиска мест недоступен
	OutcomeFrequentVenue  Outcome = "frequent_venue"  // заведение уже хорошо знакомо пользователю
	OutcomeVenueCooldown  Outcome = "venue_cooldown"  // по заведению недавно уже уведомляли
	OutcomeDailyQuota     Outcome = "daily_quota"     // дневной лимит уведомлений исчерпан
	OutcomeGlobalCooldown Outcome = "global_cooldown" // не прошел глобальный интервал между уведомлениями
	OutcomeDispatchFailed Outcome = "dispatch_failed" // доставка уведомления не подтверждена
	OutcomeStale          Outcome = "stale"           // результат поиска пришел после ухода с места
	OutcomeInFlight       Outcome = "in_flight"       // оценка пропущена: поиск по текущей стоянке уже идет
)
