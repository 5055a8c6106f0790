package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v4"

	"github.com/sushiludps-lang/wellness-app/models"
	"github.com/sushiludps-lang/wellness-app/services"
	"github.com/sushiludps-lang/wellness-app/utils"
)

const requestTimeout = 5 * time.Second

const helpText = `Commands:
/profiles - list profiles
/use <name> - log as a profile
/dishes [Breakfast|Lunch|Dinner|Snacks]
/meal <dish> <grams> [HH:MM] [meal type]
/checkin key=value ... (date weight sleep exercise mood stress gerd glucose insulin cycle flow symptoms notes)
/goal [gain|loss]
/week - last 7 days
/today - today's totals`

type handler struct {
	svc      *services.Services
	log      *zap.Logger
	sessions *sessions
}

func (h *handler) start(c tele.Context) error {
	if p, ok := h.sessions.get(c.Sender().ID); ok {
		return c.Send(fmt.Sprintf("Hi! You are logging as %s.\n\n%s", p.Name, helpText))
	}
	return c.Send("Hi! Pick a profile with /use <name> first.\n\n" + helpText)
}

func (h *handler) help(c tele.Context) error {
	return c.Send(helpText)
}

func (h *handler) profiles(c tele.Context) error {
	var sb strings.Builder
	for _, p := range models.Profiles() {
		fmt.Fprintf(&sb, "%s - %s (%s)\n", p.Name, p.Subtitle, p.Tag)
	}
	return c.Send(sb.String())
}

func (h *handler) use(c tele.Context) error {
	args := c.Args()
	if len(args) != 1 {
		return c.Send("Usage: /use <name>")
	}
	p, ok := models.LookupProfile(title(args[0]))
	if !ok {
		return c.Send("Unknown profile. See /profiles")
	}
	h.sessions.set(c.Sender().ID, p.Name)
	h.log.Info("Profile selected", zap.Int64("user_id", c.Sender().ID), zap.String("profile", p.Name))
	return c.Send("Now logging as " + p.Name)
}

func (h *handler) dishes(c tele.Context) error {
	mealType := ""
	if args := c.Args(); len(args) > 0 {
		mealType = title(args[0])
		if !utils.IsMealType(mealType) {
			return c.Send("Meal type must be one of " + strings.Join(utils.MealTypes(), ", "))
		}
	}
	return c.Send(strings.Join(utils.DishesFor(mealType), ", "))
}

func (h *handler) meal(c tele.Context) error {
	p, ok := h.profile(c)
	if !ok {
		return nil
	}
	req, err := parseMealArgs(c.Args())
	if err != nil {
		if errors.Is(err, errUsage) {
			return c.Send("Usage: /meal <dish> <grams> [HH:MM] [meal type]")
		}
		return c.Send(err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	logged, err := h.svc.Meals.LogMeal(ctx, p, req)
	if err != nil {
		return h.reply(c, err)
	}
	return c.Send(formatMeal(p, logged))
}

func (h *handler) checkin(c tele.Context) error {
	p, ok := h.profile(c)
	if !ok {
		return nil
	}
	date, req, err := parseCheckinArgs(c.Args())
	if err != nil {
		if errors.Is(err, errUsage) {
			return c.Send("Usage: /checkin weight=48.5 sleep=7 stress=3 ...")
		}
		return c.Send(err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	d, err := h.svc.Daily.SaveCheckin(ctx, p, date, req)
	if err != nil {
		return h.reply(c, err)
	}
	return c.Send("Check-in saved for " + d.LogDate)
}

func (h *handler) goal(c tele.Context) error {
	p, ok := h.profile(c)
	if !ok {
		return nil
	}
	goalType := p.GoalType
	if args := c.Args(); len(args) > 0 {
		goalType = strings.ToLower(args[0])
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	v, err := h.svc.Goals.GetGoal(ctx, p, goalType)
	if err != nil {
		return h.reply(c, err)
	}
	return c.Send(formatGoal(v))
}

func (h *handler) week(c tele.Context) error {
	p, ok := h.profile(c)
	if !ok {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	w, err := h.svc.Analytics.Week(ctx, p)
	if err != nil {
		return h.reply(c, err)
	}
	return c.Send(formatWeek(w))
}

func (h *handler) today(c tele.Context) error {
	p, ok := h.profile(c)
	if !ok {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	dash, err := h.svc.Analytics.Dashboard(ctx, p)
	if err != nil {
		return h.reply(c, err)
	}
	today := time.Now().Format(utils.DateLayout)
	for _, d := range dash.Days {
		if d.Date == today {
			return c.Send(formatDay(d))
		}
	}
	return c.Send("Nothing logged today yet.")
}

func (h *handler) profile(c tele.Context) (models.Profile, bool) {
	p, ok := h.sessions.get(c.Sender().ID)
	if !ok {
		_ = c.Send("Pick a profile first with /use <name>")
	}
	return p, ok
}

// reply shows validation problems to the user and logs everything else.
func (h *handler) reply(c tele.Context, err error) error {
	if services.IsValidation(err) || errors.Is(err, services.ErrGoalNotFound) {
		return c.Send(err.Error())
	}
	h.log.Error("Bot command failed", zap.Error(err), zap.Int64("user_id", c.Sender().ID), zap.String("text", c.Text()))
	return c.Send("Something went wrong, try again later.")
}
