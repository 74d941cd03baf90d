package commands

import (
	"context"
	"fmt"
	"strings"

	"hotsbot/internal/application"
)

type handlers struct {
	services *application.Service
	router   *Router
}

// Register adds every bot command to router.
func Register(router *Router, services *application.Service) {
	h := &handlers{services: services, router: router}

	router.Register(
		&Command{Name: "commands", Handler: h.commands},
		&Command{Name: "tips", Args: "<IRC name>", Description: "Links the tips section and highlights user", Handler: h.tips},
		&Command{Name: "tierlist", Aliases: []string{"tl"}, Description: "Replies with the url for the Zuna and iDream tierlist", Handler: h.tierlist},
		&Command{Name: "rotation", Description: "Prints the name of the current free heroes", Handler: h.rotation},
		&Command{Name: "rating", Args: "<BattleTag>", Description: "Replies with a list of players with the given BattleTag from HotsLogs", Handler: h.rating},
		&Command{Name: "addBattleTag", Aliases: []string{"addBT"}, Args: "<BattleTag>", Description: "Saves the entered BattleTag for the user", Handler: h.addBattleTag},
		&Command{Name: "getBattleTag", Aliases: []string{"getBT"}, Args: "<IRC name>", Description: "Print the BattleTag for the entered name", Handler: h.getBattleTag},
		&Command{Name: "removeBattleTag", Aliases: []string{"removeBT"}, Description: "Removes the entered battletag for the user", Handler: h.removeBattleTag},
	)
}

func (h *handlers) commands(_ context.Context, req *Request, resp Responder) error {
	if err := resp.Msg(req.Sender, msgCommandList); err != nil {
		return err
	}

	prefix := h.router.Prefix()
	for _, cmd := range h.router.Commands() {
		if cmd.Description == "" {
			continue
		}

		names := make([]string, 0, len(cmd.Aliases)+1)
		for _, name := range append([]string{cmd.Name}, cmd.Aliases...) {
			names = append(names, prefix+name)
		}
		usage := strings.Join(names, ", ")
		if cmd.Args != "" {
			usage += " " + cmd.Args
		}

		if err := resp.Msg(req.Sender, resp.Underline(usage)+" - "+cmd.Description); err != nil {
			return err
		}
	}
	return nil
}

func (h *handlers) tips(_ context.Context, req *Request, resp Responder) error {
	if req.Args == "" {
		return resp.Say(fmt.Sprintf(msgTipsNoTarget, tipsURL))
	}
	return resp.Say(fmt.Sprintf(msgTips, req.Args, tipsURL))
}

func (h *handlers) tierlist(_ context.Context, _ *Request, resp Responder) error {
	return resp.Reply(tierlistURL)
}

func (h *handlers) rotation(ctx context.Context, _ *Request, resp Responder) error {
	heroes, err := h.services.Stats.FreeRotation(ctx)
	if err != nil {
		return err
	}
	if len(heroes) == 0 {
		return resp.Say(msgNoFreeRotation)
	}

	names := make([]string, len(heroes))
	for i, hero := range heroes {
		names[i] = hero.Name
	}
	return resp.Say(msgFreeRotation + strings.Join(names, ", "))
}

func (h *handlers) rating(ctx context.Context, req *Request, resp Responder) error {
	player := req.Args
	if player == "" {
		return nil
	}

	ratings, err := h.services.Stats.Ratings(ctx, player)
	if err != nil {
		return err
	}
	if len(ratings) == 0 {
		return resp.Say(msgNoRating + player)
	}

	for _, r := range ratings {
		if err := resp.Say(fmt.Sprintf(msgRating, r.Name, r.Region, r.League, r.MMR)); err != nil {
			return err
		}
	}
	return nil
}

func (h *handlers) addBattleTag(ctx context.Context, req *Request, resp Responder) error {
	tag := req.Args
	if tag == "" {
		return resp.Msg(req.Sender, fmt.Sprintf(msgBattleTagUsage, h.router.Prefix()))
	}

	created, err := h.services.BattleTags.Register(ctx, req.Sender, tag)
	if err != nil {
		return err
	}
	if !created {
		return resp.Msg(req.Sender, msgBattleTagExists)
	}
	return resp.Msg(req.Sender, msgBattleTagAdded)
}

func (h *handlers) getBattleTag(ctx context.Context, req *Request, resp Responder) error {
	handle := req.Args
	if handle == "" {
		return resp.Reply(fmt.Sprintf(msgHandleUsage, h.router.Prefix()))
	}

	bt, err := h.services.BattleTags.Lookup(ctx, handle)
	if err != nil {
		return err
	}
	if bt == nil {
		return resp.Say(fmt.Sprintf(msgNoBattleTag, handle))
	}
	return resp.Say(fmt.Sprintf(msgBattleTag, bt.Handle, bt.Tag))
}

func (h *handlers) removeBattleTag(ctx context.Context, req *Request, resp Responder) error {
	if err := h.services.BattleTags.Remove(ctx, req.Sender); err != nil {
		return err
	}
	return resp.Msg(req.Sender, msgBattleTagGone)
}
