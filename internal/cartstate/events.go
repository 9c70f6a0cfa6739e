package cartstate

import "context"

// ChangeEvent announces a server-side change to a user's cart rows, e.g.
// from another tab or device.
type ChangeEvent struct {
	UserID string
}

// Watch consumes change events until ctx is done or the channel closes,
// refreshing the local view on each matching event. Events are best effort:
// the optimistic/rollback path stays correct whether or not any arrive, and
// a failed refresh just waits for the next event.
func (m *Manager) Watch(ctx context.Context, events <-chan ChangeEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			userID, signedIn := m.session.CurrentUserID()
			if !signedIn || (ev.UserID != "" && ev.UserID != userID) {
				continue
			}
			_ = m.Refresh(ctx)
		}
	}
}
