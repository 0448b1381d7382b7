package components

import "github.com/yohamta/donburi"

// NotificationData is a singleton holding on-screen race announcements.
type NotificationData struct {
	Messages []Notice
}

type Notice struct {
	Text            string
	FramesRemaining int
}

var Notification = donburi.NewComponentType[NotificationData]()
