package constant

type MessageKey string

const (
	MsgTitleMin           MessageKey = "validation.title_min"
	MsgTitleMax           MessageKey = "validation.title_max"
	MsgDescriptionMin     MessageKey = "validation.description_min"
	MsgDescriptionMax     MessageKey = "validation.description_max"
	MsgCategoryRequired   MessageKey = "validation.category_required"
	MsgCategoryInvalid    MessageKey = "validation.category_invalid"
	MsgLocationMin        MessageKey = "validation.location_min"
	MsgRegionInvalid      MessageKey = "validation.region_invalid"
	MsgPriorityInvalid    MessageKey = "validation.priority_invalid"
	MsgCoordinatesInvalid MessageKey = "validation.coordinates_invalid"
	MsgEmailRequired      MessageKey = "validation.email_required"
	MsgEmailInvalid       MessageKey = "validation.email_invalid"
	MsgPasswordMin        MessageKey = "validation.password_min"
	MsgPasswordComplexity MessageKey = "validation.password_complexity"
	MsgPasswordMismatch   MessageKey = "validation.password_mismatch"
	MsgUsernameMin        MessageKey = "validation.username_min"
	MsgUsernameMax        MessageKey = "validation.username_max"
	MsgUsernamePattern    MessageKey = "validation.username_pattern"
	MsgFieldInvalid       MessageKey = "validation.field_invalid"
	MsgStepDetails        MessageKey = "submission.step_details_required"
	MsgStepPlace          MessageKey = "submission.step_place_required"
	MsgStepLast           MessageKey = "submission.step_last"
	MsgStepMismatch       MessageKey = "submission.step_mismatch"

	MsgFileTooLarge        MessageKey = "upload.file_too_large"
	MsgFileTypeUnsupported MessageKey = "upload.file_type_unsupported"
	MsgMediaForeign        MessageKey = "upload.media_foreign"
	MsgFileErrorTitle      MessageKey = "upload.file_error_title"
	MsgMaxFilesTitle       MessageKey = "upload.max_files_title"
	MsgMaxFilesReached     MessageKey = "upload.max_files_reached"
	MsgUploadLoginTitle    MessageKey = "upload.login_required_title"
	MsgUploadLogin         MessageKey = "upload.login_required"
	MsgUploadFailed        MessageKey = "upload.failed"
	MsgUploadSuccessTitle  MessageKey = "upload.success_title"
	MsgUploadSuccess       MessageKey = "upload.success"
	MsgUploadNotFound      MessageKey = "upload.not_found"

	MsgSignUpErrorTitle    MessageKey = "auth.signup_error_title"
	MsgAlreadyRegistered   MessageKey = "auth.already_registered"
	MsgSignUpErrorGeneric  MessageKey = "auth.signup_error_generic"
	MsgSignUpSuccessTitle  MessageKey = "auth.signup_success_title"
	MsgSignUpSuccess       MessageKey = "auth.signup_success"
	MsgSignInErrorTitle    MessageKey = "auth.signin_error_title"
	MsgInvalidCredentials  MessageKey = "auth.invalid_credentials"
	MsgEmailNotConfirmed   MessageKey = "auth.email_not_confirmed"
	MsgSignInErrorGeneric  MessageKey = "auth.signin_error_generic"
	MsgSignInSuccessTitle  MessageKey = "auth.signin_success_title"
	MsgSignInSuccess       MessageKey = "auth.signin_success"
	MsgSignOutErrorTitle   MessageKey = "auth.signout_error_title"
	MsgSignOutError        MessageKey = "auth.signout_error"
	MsgSignOutSuccessTitle MessageKey = "auth.signout_success_title"
	MsgSignOutSuccess      MessageKey = "auth.signout_success"
	MsgConfirmSuccess      MessageKey = "auth.confirm_success"
	MsgConfirmInvalid      MessageKey = "auth.confirm_invalid"
	MsgConfirmationResent  MessageKey = "auth.confirmation_resent"
	MsgCaptchaFailed       MessageKey = "auth.captcha_failed"
	MsgLoginRequired       MessageKey = "auth.login_required"
	MsgUnexpected          MessageKey = "common.unexpected"
	MsgUnexpectedTitle     MessageKey = "common.unexpected_title"
	MsgTooManyRequests     MessageKey = "common.too_many_requests"
	MsgNetworkError        MessageKey = "common.network_error"

	MsgReportNotFound     MessageKey = "report.not_found"
	MsgLikedTitle         MessageKey = "report.liked_title"
	MsgLiked              MessageKey = "report.liked"
	MsgUnlikedTitle       MessageKey = "report.unliked_title"
	MsgUnliked            MessageKey = "report.unliked"
	MsgSubmitSuccessTitle MessageKey = "report.submit_success_title"
	MsgSubmitSuccess      MessageKey = "report.submit_success"
	MsgSubmitFailed       MessageKey = "report.submit_failed"
	MsgDashboardFailed    MessageKey = "dashboard.load_failed"
	MsgNoResults          MessageKey = "browse.no_results"
	MsgPageNotFound       MessageKey = "shell.page_not_found"
)

var Messages = map[string]map[MessageKey]string{
	"ar": {
		MsgTitleMin:           "العنوان يجب أن يكون 10 أحرف على الأقل",
		MsgTitleMax:           "العنوان يجب أن يكون أقل من 200 حرف",
		MsgDescriptionMin:     "الوصف يجب أن يكون 20 حرف على الأقل",
		MsgDescriptionMax:     "الوصف يجب أن يكون أقل من 2000 حرف",
		MsgCategoryRequired:   "يرجى اختيار فئة البلاغ",
		MsgCategoryInvalid:    "فئة البلاغ غير معروفة",
		MsgLocationMin:        "الموقع يجب أن يكون 3 أحرف على الأقل",
		MsgRegionInvalid:      "الولاية المختارة غير معروفة",
		MsgPriorityInvalid:    "الأولوية يجب أن تكون منخفضة أو متوسطة أو عالية",
		MsgCoordinatesInvalid: "الإحداثيات غير صالحة",
		MsgEmailRequired:      "البريد الإلكتروني مطلوب",
		MsgEmailInvalid:       "البريد الإلكتروني غير صحيح",
		MsgPasswordMin:        "كلمة المرور يجب أن تكون 6 أحرف على الأقل",
		MsgPasswordComplexity: "كلمة المرور يجب أن تحتوي على حرف كبير وصغير ورقم",
		MsgPasswordMismatch:   "كلمات المرور غير متطابقة",
		MsgUsernameMin:        "اسم المستخدم يجب أن يكون 3 أحرف على الأقل",
		MsgUsernameMax:        "اسم المستخدم يجب أن يكون أقل من 20 حرف",
		MsgUsernamePattern:    "اسم المستخدم يجب أن يحتوي على أحرف وأرقام فقط",
		MsgFieldInvalid:       "قيمة الحقل غير صالحة",
		MsgStepDetails:        "يرجى إدخال عنوان ووصف للبلاغ",
		MsgStepPlace:          "يرجى اختيار الفئة وتحديد الموقع أو الولاية",
		MsgStepLast:           "هذه هي الخطوة الأخيرة",
		MsgStepMismatch:       "البيانات لا تخص الخطوة الحالية",

		MsgFileTooLarge:        "حجم الملف يجب أن يكون أقل من %d ميجابايت",
		MsgFileTypeUnsupported: "نوع الملف غير مدعوم. يرجى اختيار صورة أو فيديو.",
		MsgMediaForeign:        "يمكن إرفاق الملفات المرفوعة عبر هذا التطبيق فقط.",
		MsgFileErrorTitle:      "خطأ في الملف",
		MsgMaxFilesTitle:       "تم الوصول للحد الأقصى",
		MsgMaxFilesReached:     "يمكنك رفع حتى %d ملفات فقط",
		MsgUploadLoginTitle:    "خطأ في التحقق",
		MsgUploadLogin:         "يجب تسجيل الدخول لرفع الملفات",
		MsgUploadFailed:        "فشل في رفع الملف",
		MsgUploadSuccessTitle:  "تم رفع الملفات بنجاح",
		MsgUploadSuccess:       "تم رفع %d ملف بنجاح",
		MsgUploadNotFound:      "الملف غير موجود",

		MsgSignUpErrorTitle:    "خطأ في التسجيل",
		MsgAlreadyRegistered:   "هذا البريد الإلكتروني مسجل بالفعل",
		MsgSignUpErrorGeneric:  "حدث خطأ أثناء التسجيل",
		MsgSignUpSuccessTitle:  "تم التسجيل بنجاح",
		MsgSignUpSuccess:       "تم إرسال رابط تأكيد إلى بريدك الإلكتروني",
		MsgSignInErrorTitle:    "خطأ في تسجيل الدخول",
		MsgInvalidCredentials:  "بيانات الدخول غير صحيحة",
		MsgEmailNotConfirmed:   "يرجى تأكيد بريدك الإلكتروني أولاً",
		MsgSignInErrorGeneric:  "حدث خطأ أثناء تسجيل الدخول",
		MsgSignInSuccessTitle:  "تم تسجيل الدخول بنجاح",
		MsgSignInSuccess:       "مرحباً بك في بلّغ",
		MsgSignOutErrorTitle:   "خطأ في تسجيل الخروج",
		MsgSignOutError:        "حدث خطأ أثناء تسجيل الخروج",
		MsgSignOutSuccessTitle: "تم تسجيل الخروج",
		MsgSignOutSuccess:      "شكراً لاستخدام بلّغ",
		MsgConfirmSuccess:      "تم تأكيد بريدك الإلكتروني، يمكنك الآن تسجيل الدخول",
		MsgConfirmInvalid:      "رابط التأكيد غير صالح أو منتهي الصلاحية",
		MsgConfirmationResent:  "تم إرسال رابط تأكيد جديد",
		MsgCaptchaFailed:       "فشل التحقق من أنك لست روبوتاً",
		MsgLoginRequired:       "يجب تسجيل الدخول للمتابعة",
		MsgUnexpected:          "حدث خطأ غير متوقع",
		MsgUnexpectedTitle:     "خطأ في التطبيق",
		MsgTooManyRequests:     "طلبات كثيرة، يرجى المحاولة لاحقاً",
		MsgNetworkError:        "تعذر الاتصال بالخادم، يرجى المحاولة مرة أخرى",

		MsgReportNotFound:     "التبليغ غير موجود",
		MsgLikedTitle:         "تم الإعجاب بالتبليغ",
		MsgLiked:              "شكراً لدعمك للمجتمع",
		MsgUnlikedTitle:       "تم إلغاء الإعجاب",
		MsgUnliked:            "شكراً لمشاركتك",
		MsgSubmitSuccessTitle: "تم إرسال التبليغ",
		MsgSubmitSuccess:      "سيتم مراجعة التبليغ والرد عليه خلال 24 ساعة",
		MsgSubmitFailed:       "تعذر إرسال التبليغ، تم حفظ المسودة ويمكنك إعادة المحاولة",
		MsgDashboardFailed:    "تعذر تحميل بيانات لوحة التحكم",
		MsgNoResults:          "لا توجد تبليغات مطابقة",
		MsgPageNotFound:       "الصفحة غير موجودة",
	},
	"en": {
		MsgTitleMin:           "Title must be at least 10 characters",
		MsgTitleMax:           "Title must be less than 200 characters",
		MsgDescriptionMin:     "Description must be at least 20 characters",
		MsgDescriptionMax:     "Description must be less than 2000 characters",
		MsgCategoryRequired:   "Please choose a report category",
		MsgCategoryInvalid:    "Unknown report category",
		MsgLocationMin:        "Location must be at least 3 characters",
		MsgRegionInvalid:      "Unknown region",
		MsgPriorityInvalid:    "Priority must be low, medium or high",
		MsgCoordinatesInvalid: "Invalid coordinates",
		MsgEmailRequired:      "Email is required",
		MsgEmailInvalid:       "Invalid email address",
		MsgPasswordMin:        "Password must be at least 6 characters",
		MsgPasswordComplexity: "Password must contain an uppercase letter, a lowercase letter and a digit",
		MsgPasswordMismatch:   "Passwords do not match",
		MsgUsernameMin:        "Username must be at least 3 characters",
		MsgUsernameMax:        "Username must be less than 20 characters",
		MsgUsernamePattern:    "Username may only contain letters, digits and underscores",
		MsgFieldInvalid:       "Invalid value",
		MsgStepDetails:        "Please enter a title and a description",
		MsgStepPlace:          "Please choose a category and a location or region",
		MsgStepLast:           "This is the last step",
		MsgStepMismatch:       "Data does not belong to the current step",

		MsgFileTooLarge:        "File size must be less than %d MB",
		MsgFileTypeUnsupported: "Unsupported file type. Please choose an image or a video.",
		MsgMediaForeign:        "Only files uploaded through this app can be attached.",
		MsgFileErrorTitle:      "File error",
		MsgMaxFilesTitle:       "Limit reached",
		MsgMaxFilesReached:     "You can upload up to %d files",
		MsgUploadLoginTitle:    "Authentication error",
		MsgUploadLogin:         "You must sign in to upload files",
		MsgUploadFailed:        "Failed to upload file",
		MsgUploadSuccessTitle:  "Files uploaded",
		MsgUploadSuccess:       "%d file(s) uploaded successfully",
		MsgUploadNotFound:      "File not found",

		MsgSignUpErrorTitle:    "Sign-up error",
		MsgAlreadyRegistered:   "This email is already registered",
		MsgSignUpErrorGeneric:  "An error occurred during sign-up",
		MsgSignUpSuccessTitle:  "Signed up",
		MsgSignUpSuccess:       "A confirmation link was sent to your email",
		MsgSignInErrorTitle:    "Sign-in error",
		MsgInvalidCredentials:  "Invalid login credentials",
		MsgEmailNotConfirmed:   "Please confirm your email first",
		MsgSignInErrorGeneric:  "An error occurred during sign-in",
		MsgSignInSuccessTitle:  "Signed in",
		MsgSignInSuccess:       "Welcome to Balagh",
		MsgSignOutErrorTitle:   "Sign-out error",
		MsgSignOutError:        "An error occurred during sign-out",
		MsgSignOutSuccessTitle: "Signed out",
		MsgSignOutSuccess:      "Thank you for using Balagh",
		MsgConfirmSuccess:      "Your email is confirmed, you can now sign in",
		MsgConfirmInvalid:      "Confirmation link is invalid or expired",
		MsgConfirmationResent:  "A new confirmation link was sent",
		MsgCaptchaFailed:       "Captcha verification failed",
		MsgLoginRequired:       "You must sign in to continue",
		MsgUnexpected:          "An unexpected error occurred",
		MsgUnexpectedTitle:     "Application error",
		MsgTooManyRequests:     "Too many requests, please try again later",
		MsgNetworkError:        "Could not reach the server, please try again",

		MsgReportNotFound:     "Report not found",
		MsgLikedTitle:         "Report liked",
		MsgLiked:              "Thank you for supporting your community",
		MsgUnlikedTitle:       "Like removed",
		MsgUnliked:            "Thank you for participating",
		MsgSubmitSuccessTitle: "Report submitted",
		MsgSubmitSuccess:      "Your report will be reviewed within 24 hours",
		MsgSubmitFailed:       "Could not submit the report, your draft was kept and you can retry",
		MsgDashboardFailed:    "Could not load dashboard data",
		MsgNoResults:          "No matching reports",
		MsgPageNotFound:       "Page not found",
	},
}
