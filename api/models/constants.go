package models

import "github.com/Felipeu28/CampaignControl-sub001/campaign"

var Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var ValidChannels = map[campaign.Channel]string{
	campaign.ChannelDigital: "Digital ads and websites",
	campaign.ChannelPrint:   "Yard signs, mailers and flyers",
	campaign.ChannelSMS:     "Text message outreach",
	campaign.ChannelRadio:   "Radio spots",
	campaign.ChannelTV:      "Television spots",
}
