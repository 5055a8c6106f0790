package bot

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v4"

	"github.com/sushiludps-lang/wellness-app/config"
	"github.com/sushiludps-lang/wellness-app/models"
	"github.com/sushiludps-lang/wellness-app/services"
)

// sessions maps a Telegram user to the profile they log as.
type sessions struct {
	sync.RWMutex
	m map[int64]string
}

func newSessions(seed map[int64]string) *sessions {
	s := &sessions{m: make(map[int64]string, len(seed))}
	for id, name := range seed {
		s.m[id] = name
	}
	return s
}

func (s *sessions) get(id int64) (models.Profile, bool) {
	s.RLock()
	name, ok := s.m[id]
	s.RUnlock()
	if !ok {
		return models.Profile{}, false
	}
	return models.LookupProfile(name)
}

func (s *sessions) set(id int64, name string) {
	s.Lock()
	s.m[id] = name
	s.Unlock()
}

// New builds the bot with every command registered; call Start on the result.
func New(cfg *config.Config, svc *services.Services, log *zap.Logger) (*tele.Bot, error) {
	if cfg.TGtoken == "" {
		return nil, fmt.Errorf("TG_TOKEN is not set")
	}
	pref := tele.Settings{
		Token:  cfg.TGtoken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	h := &handler{svc: svc, log: log, sessions: newSessions(cfg.TGProfiles)}

	b.Handle("/start", h.start)
	b.Handle("/help", h.help)
	b.Handle("/profiles", h.profiles)
	b.Handle("/use", h.use)
	b.Handle("/dishes", h.dishes)
	b.Handle("/meal", h.meal)
	b.Handle("/checkin", h.checkin)
	b.Handle("/goal", h.goal)
	b.Handle("/week", h.week)
	b.Handle("/today", h.today)

	log.Info("Bot configured", zap.Int("bound_users", len(cfg.TGProfiles)))
	return b, nil
}
