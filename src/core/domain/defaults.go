package domain

// DefaultUserName is used when registration omits a display name.
const DefaultUserName = "Jacques-Yves Cousteau"

// DefaultUserAbout is used when registration omits the bio text.
const DefaultUserAbout = "Explorer"

// DefaultUserAvatar is used when registration omits an avatar URL.
const DefaultUserAvatar = "https://pictures.s3.yandex.net/resources/jacques-cousteau_1604399756.png"
