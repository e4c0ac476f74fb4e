package system

import (
	"github.com/younwookim/wallhop/internal/domain/collision"
	"github.com/younwookim/wallhop/internal/domain/entity"
	"github.com/younwookim/wallhop/internal/domain/movement"
	"github.com/younwookim/wallhop/internal/infrastructure/config"
)

// Contact summarizes what the player touched during one tick
type Contact struct {
	Landed bool
	Wall   bool
	Died   bool
	Death  string // name of the death plane, if any
}

// Event maps the contact flags to a movement event
func (c Contact) Event() movement.Event {
	switch {
	case c.Landed:
		return movement.EventLanded
	case c.Wall:
		return movement.EventWallContact
	case c.Died:
		return movement.EventLethal
	default:
		return movement.EventNoContact
	}
}

// CollisionStats counts contacts since the system was created
type CollisionStats struct {
	Landings     int
	WallContacts int
	Deaths       int
}

// CollisionSystem corrects the player's tentative position against the
// level geometry and settles the movement state for the tick
type CollisionSystem struct {
	config *config.PhysicsConfig
	level  *entity.Level
	index  *geometryIndex
	stats  CollisionStats
}

// NewCollisionSystem creates a new collision system for a level
func NewCollisionSystem(cfg *config.PhysicsConfig, level *entity.Level) *CollisionSystem {
	return &CollisionSystem{
		config: cfg,
		level:  level,
		index:  newGeometryIndex(level, cfg.Collision.CellSize),
	}
}

// Stats returns the contact counters
func (s *CollisionSystem) Stats() CollisionStats {
	return s.stats
}

// Update resolves the player against every overlapping box in authoring
// order, then derives the next movement state from what was touched.
func (s *CollisionSystem) Update(player *entity.Player) Contact {
	var c Contact

	if s.config.Collision.LethalPriority {
		if box, ok := s.lethalOverlap(player); ok {
			s.kill(player, box, &c)
			player.State = movement.Next(player.State, c.Event())
			return c
		}
	}

	candidates := s.index.Candidates(player)
	for len(candidates) > 0 {
		i := candidates[0]
		candidates = candidates[1:]

		box := &s.level.Boxes[i]
		side := collision.Resolve(player.Pos2(), player.HalfSize, box.Center, box.HalfSize)
		if side == collision.None {
			continue
		}

		if box.Lethal {
			// Without lethal priority, boxes after the death plane are still
			// checked against the spawn point and may overwrite the reset.
			s.kill(player, box, &c)
			if s.config.Collision.LethalPriority {
				break
			}
		} else {
			s.push(player, box, side, &c)
		}

		// The player moved; later boxes are looked up around the new position.
		candidates = after(s.index.Candidates(player), i)
	}

	player.State = movement.Next(player.State, c.Event())
	return c
}

// lethalOverlap returns the first death plane overlapping the player
func (s *CollisionSystem) lethalOverlap(player *entity.Player) (*entity.Box, bool) {
	for _, i := range s.index.Candidates(player) {
		box := &s.level.Boxes[i]
		if !box.Lethal {
			continue
		}
		if collision.Overlaps(player.Pos2(), player.HalfSize, box.Center, box.HalfSize) {
			return box, true
		}
	}
	return nil, false
}

// kill sends the player back to spawn. Contacts gathered before the reset
// no longer apply.
func (s *CollisionSystem) kill(player *entity.Player, box *entity.Box, c *Contact) {
	player.Reset(s.level.Spawn)
	*c = Contact{Died: true, Death: box.Name}
	s.stats.Deaths++
}

// push moves the player out of box along side and adjusts velocity
func (s *CollisionSystem) push(player *entity.Player, box *entity.Box, side collision.Side, c *Contact) {
	k := &player.Kinematics
	hw, hh := player.HalfSize.X(), player.HalfSize.Y()

	switch side {
	case collision.Top:
		k.SetY(box.Top() + hh)
		k.Velocity[1] = max(k.Velocity.Y(), 0)
		c.Landed = true
		s.stats.Landings++
	case collision.Bottom:
		k.SetY(box.Bottom() - hh)
		k.Velocity[1] = min(k.Velocity.Y(), 0)
	case collision.Left:
		k.SetX(box.Left() - hw)
		k.Velocity[0] = s.config.WallJump.WallNudge
		k.Velocity[1] *= s.config.WallJump.SlideDamp
		c.Wall = true
		s.stats.WallContacts++
	case collision.Right:
		k.SetX(box.Right() + hw)
		k.Velocity[0] = -s.config.WallJump.WallNudge
		k.Velocity[1] *= s.config.WallJump.SlideDamp
		c.Wall = true
		s.stats.WallContacts++
	}
}

// after returns the indices in sorted that are greater than i
func after(sorted []int, i int) []int {
	for n, v := range sorted {
		if v > i {
			return sorted[n:]
		}
	}
	return nil
}
